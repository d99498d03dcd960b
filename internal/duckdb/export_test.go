package duckdb_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"quizbank/internal/duckdb"
	duckdbtesting "quizbank/internal/duckdb/testing"
	"quizbank/internal/question"
	"quizbank/internal/testutil"
)

const testTimeout = 10 * time.Second

func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	return duckdbtesting.Open(t, ":memory:"), ctx
}

func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}

func sample(id, text string, answer question.ChoiceKey) question.Record {
	return question.Record{
		ID:       id,
		Question: text,
		Choices: map[question.ChoiceKey]string{
			question.KeyA: "A", question.KeyB: "B", question.KeyC: "C", question.KeyD: "D",
		},
		Answer: answer,
	}
}

// TestSchemaObjectsExist verifies export tables are created.
func TestSchemaObjectsExist(t *testing.T) {
	db, ctx := openTestDB(t)
	for _, table := range []string{"questions", "exports"} {
		count := queryInt(t, ctx, db, "SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?", table)
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

// TestExportRecordsReplacesRows verifies a re-export mirrors the latest snapshot.
func TestExportRecordsReplacesRows(t *testing.T) {
	db, ctx := openTestDB(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first := []question.Record{sample("q1", "one", question.KeyA), sample("q2", "two", question.KeyB)}
	if _, err := duckdb.ExportRecords(ctx, db, "bank.jsonl", first, now); err != nil {
		t.Fatalf("first export: %v", err)
	}
	second := []question.Record{sample("q2", "two", question.KeyB), sample("q3", "three", question.KeyD)}
	summary, err := duckdb.ExportRecords(ctx, db, "bank.jsonl", second, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if summary.Count != 2 || summary.ExportID == "" {
		t.Fatalf("unexpected summary %+v", summary)
	}

	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM questions"); got != 2 {
		t.Fatalf("expected 2 questions, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT position FROM questions WHERE id = 'q3'"); got != 2 {
		t.Fatalf("expected q3 at position 2, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM exports"); got != 2 {
		t.Fatalf("expected 2 export rows, got %d", got)
	}
	var answer string
	if err := db.QueryRowContext(ctx, "SELECT answer FROM questions WHERE id = 'q3'").Scan(&answer); err != nil {
		t.Fatalf("query answer: %v", err)
	}
	if answer != "d" {
		t.Fatalf("expected answer d, got %q", answer)
	}
}

// TestFingerprintIgnoresID verifies identical content shares a fingerprint.
func TestFingerprintIgnoresID(t *testing.T) {
	a, err := duckdb.Fingerprint(sample("x", "same", question.KeyA))
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	b, err := duckdb.Fingerprint(sample("y", "same", question.KeyA))
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	c, err := duckdb.Fingerprint(sample("x", "same", question.KeyB))
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if a != b {
		t.Fatalf("expected equal fingerprints")
	}
	if a == c {
		t.Fatalf("expected answer change to alter fingerprint")
	}
}
