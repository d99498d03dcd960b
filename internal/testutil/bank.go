package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizbank/internal/question"
)

// Record builds a well-formed record whose choices are derived from text.
func Record(text string, answer question.ChoiceKey) question.Record {
	return question.Record{
		Question: text,
		Choices: map[question.ChoiceKey]string{
			question.KeyA: text + " A",
			question.KeyB: text + " B",
			question.KeyC: text + " C",
			question.KeyD: text + " D",
		},
		Answer: answer,
	}
}

// Line renders a persisted bank line for a record with the given id.
func Line(id, text string, answer question.ChoiceKey) string {
	return fmt.Sprintf(
		`{"question":%q,"choices":{"a":%q,"b":%q,"c":%q,"d":%q},"answer":%q,"id":%q}`,
		text, text+" A", text+" B", text+" C", text+" D", string(answer), id,
	)
}

// WriteBank writes lines to a bank file under dir and returns its path.
func WriteBank(t testing.TB, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, "bank.jsonl")
	body := ""
	if len(lines) > 0 {
		body = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}
