package duckdbtesting

import (
	"database/sql"
	"testing"
	"time"

	"quizbank/internal/duckdb"
	"quizbank/internal/testutil"
)

const (
	defaultTimeout = 10 * time.Second
)

// Open opens a DuckDB connection with the schema applied and closes it on cleanup.
func Open(t testing.TB, dsn string) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	conn, err := duckdb.Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}
