package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"quizbank/internal/duckdb"
)

func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
		outPath := flags.String("out", "", "DuckDB database file (default from config export.duckdb_path)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := common.open(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		target := strings.TrimSpace(*outPath)
		if target == "" {
			target = bank.cfg.DuckDBPath()
		}
		if target == "" {
			fmt.Fprintln(stderr, "export requires --out or export.duckdb_path in config")
			return ExitUsage
		}
		target, err = filepath.Abs(target)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}

		records, err := bank.store.Load()
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			fmt.Fprintf(stderr, "Export failed: create output dir: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		db, err := duckdb.Open(ctx, target)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		summary, err := duckdb.ExportRecords(ctx, db, bank.store.Path(), records, time.Now().UTC())
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		bank.log.Debug("bank exported",
			zap.String("out", target),
			zap.String("export_id", summary.ExportID),
			zap.Int("questions", summary.Count),
		)
		fmt.Fprintf(stdout, "Exported %d questions to %s (export %s)\n", summary.Count, target, summary.ExportID)
		return ExitOK
	}
}
