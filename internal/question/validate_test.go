package question

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAcceptsWellFormedRecord(t *testing.T) {
	if err := Validate(sampleRecord()); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
}

func TestValidateRejectsMalformedRecords(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Record)
		field  string
	}{
		{name: "empty question", mutate: func(r *Record) { r.Question = "  " }, field: "question"},
		{name: "empty choice", mutate: func(r *Record) { r.Choices[KeyC] = "" }, field: "choices.c"},
		{name: "missing choice", mutate: func(r *Record) { delete(r.Choices, KeyD) }, field: "choices.d"},
		{name: "extra choice", mutate: func(r *Record) { r.Choices["e"] = "E" }, field: "choices"},
		{name: "no choices", mutate: func(r *Record) { r.Choices = nil }, field: "choices"},
		{name: "dangling answer", mutate: func(r *Record) { r.Answer = "e" }, field: "answer"},
		{name: "empty answer", mutate: func(r *Record) { r.Answer = "" }, field: "answer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := sampleRecord().Clone()
			tc.mutate(&record)
			err := Validate(record)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			found := false
			for _, issue := range validationErr.Issues {
				if issue.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected issue on %s, got %+v", tc.field, validationErr.Issues)
			}
		})
	}
}

func TestNormalizeTrimsAndLowercases(t *testing.T) {
	record := Record{
		Question: "  What?  ",
		Choices:  map[ChoiceKey]string{KeyA: " 1", KeyB: "2 ", KeyC: "3", KeyD: "4"},
		Answer:   " B ",
	}
	normalized := Normalize(record)
	if normalized.Question != "What?" {
		t.Fatalf("expected trimmed question, got %q", normalized.Question)
	}
	if normalized.Choices[KeyA] != "1" || normalized.Choices[KeyB] != "2" {
		t.Fatalf("expected trimmed choices, got %+v", normalized.Choices)
	}
	if normalized.Answer != KeyB {
		t.Fatalf("expected answer b, got %q", normalized.Answer)
	}
	if record.Choices[KeyA] != " 1" {
		t.Fatalf("expected input record to be untouched")
	}
}

func TestValidationErrorPrefixed(t *testing.T) {
	err := &ValidationError{Issues: []Issue{{Field: "answer", Message: "is required"}}}
	prefixed := err.Prefixed("records[2]")
	if !strings.Contains(prefixed.Error(), "records[2].answer: is required") {
		t.Fatalf("unexpected message %q", prefixed.Error())
	}
}
