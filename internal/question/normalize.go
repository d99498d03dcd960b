package question

import (
	"fmt"
	"strings"
)

// Normalize trims every text field and lowercases the answer key.
func Normalize(r Record) Record {
	out := r.Clone()
	out.ID = strings.TrimSpace(out.ID)
	out.Question = strings.TrimSpace(out.Question)
	for key, text := range out.Choices {
		out.Choices[key] = strings.TrimSpace(text)
	}
	out.Answer = ChoiceKey(strings.ToLower(strings.TrimSpace(string(out.Answer))))
	return out
}

// ParseChoiceKey converts raw user input into a choice key.
// Empty input yields an empty key and no error.
func ParseChoiceKey(raw string) (ChoiceKey, error) {
	value := ChoiceKey(strings.ToLower(strings.TrimSpace(raw)))
	if value == "" {
		return "", nil
	}
	if !IsChoiceKey(value) {
		return "", fmt.Errorf("invalid choice %q (expected a|b|c|d)", raw)
	}
	return value, nil
}

// IsChoiceKey reports whether key is one of a, b, c, d.
func IsChoiceKey(key ChoiceKey) bool {
	for _, known := range Keys {
		if key == known {
			return true
		}
	}
	return false
}
