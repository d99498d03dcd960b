package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a record.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

// Prefixed returns a copy of the error with every field prefixed.
func (err *ValidationError) Prefixed(prefix string) *ValidationError {
	out := &ValidationError{Issues: make([]Issue, 0, len(err.Issues))}
	for _, issue := range err.Issues {
		out.Issues = append(out.Issues, Issue{Field: prefix + "." + issue.Field, Message: issue.Message})
	}
	return out
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks that a record is well-formed: non-empty question,
// exactly the choices a-d with non-empty text, and an answer naming one of them.
func Validate(r Record) error {
	collector := &issueCollector{}
	if strings.TrimSpace(r.Question) == "" {
		collector.add("question", "is required")
	}

	if len(r.Choices) == 0 {
		collector.add("choices", "is required")
	} else {
		for _, key := range Keys {
			text, ok := r.Choices[key]
			if !ok {
				collector.add("choices."+string(key), "is missing")
				continue
			}
			if strings.TrimSpace(text) == "" {
				collector.add("choices."+string(key), "is required")
			}
		}
		for key := range r.Choices {
			if !IsChoiceKey(key) {
				collector.add("choices", fmt.Sprintf("unknown key %q", key))
			}
		}
	}

	if r.Answer == "" {
		collector.add("answer", "is required")
	} else if _, ok := r.Choices[r.Answer]; !ok || !IsChoiceKey(r.Answer) {
		collector.add("answer", fmt.Sprintf("unknown choice %q", r.Answer))
	}

	return collector.result()
}
