// Package script formats collected news into a Korean narration script for
// downstream non-technical consumption. Pure formatting, no side effects.
package script

import (
	"fmt"
	"strings"
	"time"

	"aiatlas/pkg/models"
)

// MaxItems bounds the number of news items narrated per script.
const MaxItems = 5

// Script is the generated narration with its estimated duration.
type Script struct {
	Intro           string    `json:"intro"`
	Sections        []Section `json:"sections"`
	Outro           string    `json:"outro"`
	EstimatedLength string    `json:"estimated_length"`
	GeneratedAt     string    `json:"generated_at"`
}

// Section narrates one news item.
type Section struct {
	Title     string `json:"title"`
	Narration string `json:"narration"`
}

// Generate builds the narration script from the given items, which must be
// sorted most-recent-first. Only the first MaxItems are used. An empty list
// still yields a well-formed intro/outro with duration "1분".
func Generate(items []models.NewsItem, now time.Time) Script {
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}

	s := Script{
		Intro: fmt.Sprintf(
			"안녕하세요, AI 문명 관측소입니다. %s 기준, 오늘의 AI 소식 %d건을 전해드립니다.",
			now.Format("2006년 1월 2일"), len(items)),
		Outro:           "이상으로 오늘의 관측을 마칩니다. AI 문명 관측소였습니다.",
		EstimatedLength: fmt.Sprintf("%d분", len(items)*2+1),
		GeneratedAt:     now.UTC().Format(time.RFC3339),
	}

	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%d번째 소식입니다. %s, 출처는 %s입니다. ", i+1, item.Title, item.Source)
		if item.Summary != "" {
			b.WriteString(item.Summary)
			b.WriteString(" ")
		}
		if item.Analysis != "" {
			b.WriteString(item.Analysis)
			b.WriteString(" ")
		}
		if item.Comment != "" {
			fmt.Fprintf(&b, "한 줄 평입니다. \"%s\"", item.Comment)
		}
		s.Sections = append(s.Sections, Section{
			Title:     item.Title,
			Narration: strings.TrimSpace(b.String()),
		})
	}
	return s
}
