package validation

import (
	"strings"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// Filter validates body against allowed and returns the subset of body
// restricted to the allowed keys. A trailing '*' on an allowed key marks it
// required. Keys in body outside allowed fail with InvalidFieldError, as do
// missing required keys. Filter must run before any body field is applied to
// a persisted record; it is the sole guard against over-posting.
func Filter(allowed []string, body map[string]any) (map[string]any, error) {
	names := make(map[string]bool, len(allowed))
	var required []string
	for _, entry := range allowed {
		name, req := strings.CutSuffix(entry, "*")
		names[name] = true
		if req {
			required = append(required, name)
		}
	}

	for key := range body {
		if !names[key] {
			return nil, &domain.InvalidFieldError{Field: key, Reason: "unknown"}
		}
	}
	for _, name := range required {
		if _, ok := body[name]; !ok {
			return nil, &domain.InvalidFieldError{Field: name, Reason: "required"}
		}
	}

	out := make(map[string]any, len(body))
	for key, val := range body {
		out[key] = val
	}
	return out, nil
}

// StringField returns body[key] as a string, or "" when absent or not a string.
func StringField(body map[string]any, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

// OptString returns a pointer to body[key] when present as a string, else nil.
func OptString(body map[string]any, key string) *string {
	if v, ok := body[key].(string); ok {
		return &v
	}
	return nil
}
