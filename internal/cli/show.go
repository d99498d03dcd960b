package cli

import (
	"flag"
	"fmt"
	"io"

	"quizbank/internal/question"
)

func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		ref, rest := splitRef(args)
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
		if code, ok := parseFlags(cmd, flags, rest, stdout, stderr); !ok {
			return code
		}
		ref, ok := singleArg(ref, flags)
		if !ok {
			fmt.Fprintln(stderr, "show requires exactly one question id")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := common.open(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Show failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		record, err := bank.store.Resolve(ref)
		if err != nil {
			fmt.Fprintf(stderr, "Show failed: %v\n", err)
			return ExitError
		}
		printRecord(stdout, record)
		return ExitOK
	}
}

func printRecord(w io.Writer, record question.Record) {
	fmt.Fprintf(w, "ID: %s\n", record.ID)
	fmt.Fprintf(w, "Question: %s\n", record.Question)
	for _, key := range question.Keys {
		fmt.Fprintf(w, "  %s) %s\n", key.Upper(), record.Choices[key])
	}
	fmt.Fprintf(w, "Answer: %s\n", record.Answer.Upper())
}
