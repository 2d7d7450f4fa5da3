package api

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// corsHeaders are attached to every response, including errors and the
// OPTIONS short-circuit.
func corsHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
	h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
}

// writeJSON writes v as the JSON response envelope.
func writeJSON(w http.ResponseWriter, status int, v any) {
	corsHeaders(w)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the fixed error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeBody decodes the request body into v. A missing or malformed body is
// silently treated as empty; v keeps its zero values.
func decodeBody(r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(v)
}

// CoerceNumbers walks a value decoded with json.Number enabled and converts
// each number to int64 when exactly whole, else float64. Stored documents
// keep the store's decimal representation; responses must not render whole
// numbers with a fractional part.
func CoerceNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, val := range t {
			t[k] = CoerceNumbers(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = CoerceNumbers(val)
		}
		return t
	default:
		return v
	}
}

// decodeDocument decodes a stored JSON document into a map with numbers
// coerced per CoerceNumbers.
func decodeDocument(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	CoerceNumbers(m)
	return m, nil
}
