package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
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
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		records, err := bank.store.Load()
		if err != nil {
			fmt.Fprintf(stderr, "List failed:\n%v\n", err)
			return ExitError
		}
		if len(records) == 0 {
			fmt.Fprintln(stdout, "No questions yet.")
			return ExitOK
		}
		for i, record := range records {
			fmt.Fprintf(stdout, "%d. %s [%s]\n", i+1, record.Question, shortID(record.ID))
		}
		return ExitOK
	}
}
