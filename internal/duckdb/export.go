package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"quizbank/internal/question"
)

// ExportSummary describes one completed export.
type ExportSummary struct {
	ExportID   string
	Count      int
	ExportedAt time.Time
}

// ExportRecords replaces the questions table with records, in order, and
// logs the export. Everything runs in one transaction.
func ExportRecords(ctx context.Context, db *sql.DB, sourcePath string, records []question.Record, now time.Time) (ExportSummary, error) {
	if ctx == nil {
		return ExportSummary{}, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return ExportSummary{}, errors.New("duckdb: db is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ExportSummary{}, fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions"); err != nil {
		return ExportSummary{}, fmt.Errorf("clear questions: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO questions
  (id, position, question, choice_a, choice_b, choice_c, choice_d, answer, fingerprint)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ExportSummary{}, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, record := range records {
		fingerprint, err := Fingerprint(record)
		if err != nil {
			return ExportSummary{}, fmt.Errorf("fingerprint %s: %w", record.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			record.ID,
			i+1,
			record.Question,
			record.Choices[question.KeyA],
			record.Choices[question.KeyB],
			record.Choices[question.KeyC],
			record.Choices[question.KeyD],
			string(record.Answer),
			fingerprint,
		); err != nil {
			return ExportSummary{}, fmt.Errorf("insert %s: %w", record.ID, err)
		}
	}

	summary := ExportSummary{
		ExportID:   uuid.NewString(),
		Count:      len(records),
		ExportedAt: now.UTC(),
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO exports (export_id, source_path, record_count, exported_at) VALUES (?, ?, ?, ?)",
		summary.ExportID, sourcePath, summary.Count, summary.ExportedAt,
	); err != nil {
		return ExportSummary{}, fmt.Errorf("record export: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return ExportSummary{}, fmt.Errorf("commit export: %w", err)
	}
	return summary, nil
}
