package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"quizbank/internal/question"
)

func runImport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		source, rest := splitRef(args)
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
		if code, ok := parseFlags(cmd, flags, rest, stdout, stderr); !ok {
			return code
		}
		source, ok := singleArg(source, flags)
		if !ok {
			fmt.Fprintln(stderr, "import requires exactly one question file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := common.open(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		path, err := filepath.Abs(source)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		doc, err := question.LoadDocument(path)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed:\n%v\n", err)
			return ExitError
		}
		existing, err := bank.store.Load()
		if err != nil {
			fmt.Fprintf(stderr, "Import failed:\n%v\n", err)
			return ExitError
		}
		merged := append(existing, doc.Questions...)
		if err := bank.store.ReplaceAll(merged); err != nil {
			fmt.Fprintf(stderr, "Import failed:\n%v\n", err)
			return ExitError
		}
		bank.log.Debug("questions imported",
			zap.String("source", path),
			zap.Int("imported", len(doc.Questions)),
			zap.Int("total", len(merged)),
		)
		fmt.Fprintf(stdout, "Imported %d questions (%d total)\n", len(doc.Questions), len(merged))
		return ExitOK
	}
}
