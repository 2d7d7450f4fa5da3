// Package ai calls the external text-generation service to enrich collected
// news items. Callers must treat every failure as recoverable: the collector
// substitutes deterministic fallback text and moves on.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Enrichment holds the structured output of one enrichment call.
type Enrichment struct {
	Summary     string
	Analysis    string
	Comment     string
	Perspective string
}

// Perspective labels the model may choose from. Anything else is coerced to
// the neutral label.
const (
	PerspectiveOptimistic = "낙관"
	PerspectiveNeutral    = "중립"
	PerspectiveCautious   = "신중"
)

// Enricher produces structured enrichment for a news item.
type Enricher interface {
	Enrich(ctx context.Context, title, description string) (Enrichment, error)
}

// New creates an Enricher for the given API key. An empty key returns nil,
// which callers interpret as "enrichment not configured".
func New(apiKey, model string) Enricher {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &openaiEnricher{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

const enrichPrompt = `You are an analyst for an AI civilization observatory. Given this AI news item, respond in Korean.

Format your response EXACTLY like this:
SUMMARY: <two sentence summary, max 200 chars>
ANALYSIS: <measured analysis of what this means for AI-civilization trajectory, 2-3 sentences>
COMMENT: "<one-line quotable comment>"
PERSPECTIVE: <exactly one of: 낙관, 중립, 신중>

Title: %s
Description: %s`

// ParseEnrichment parses the line-structured model response. Missing fields
// stay empty; an out-of-set perspective becomes 중립.
func ParseEnrichment(text string) Enrichment {
	var e Enrichment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			e.Summary = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
		case strings.HasPrefix(line, "ANALYSIS:"):
			e.Analysis = strings.TrimSpace(strings.TrimPrefix(line, "ANALYSIS:"))
		case strings.HasPrefix(line, "COMMENT:"):
			c := strings.TrimSpace(strings.TrimPrefix(line, "COMMENT:"))
			e.Comment = strings.Trim(c, `"`)
		case strings.HasPrefix(line, "PERSPECTIVE:"):
			e.Perspective = strings.TrimSpace(strings.TrimPrefix(line, "PERSPECTIVE:"))
		}
	}
	switch e.Perspective {
	case PerspectiveOptimistic, PerspectiveNeutral, PerspectiveCautious:
	default:
		e.Perspective = PerspectiveNeutral
	}
	return e
}

// --- OpenAI provider ---

type openaiEnricher struct {
	apiKey string
	model  string
	client *http.Client
}

type openaiRequest struct {
	Model    string          `json:"model"`
	Messages []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiEnricher) Enrich(ctx context.Context, title, description string) (Enrichment, error) {
	text, err := o.call(ctx, fmt.Sprintf(enrichPrompt, title, description))
	if err != nil {
		return Enrichment{}, err
	}
	e := ParseEnrichment(text)
	if e.Summary == "" {
		return Enrichment{}, fmt.Errorf("enrichment response missing summary")
	}
	return e, nil
}

func (o *openaiEnricher) call(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(openaiRequest{
		Model:    o.model,
		Messages: []openaiMessage{{Role: "user", Content: prompt}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai API %d: %s", resp.StatusCode, string(b))
	}

	var or openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", err
	}
	if len(or.Choices) == 0 {
		return "", fmt.Errorf("empty openai response")
	}
	return or.Choices[0].Message.Content, nil
}
