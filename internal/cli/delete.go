package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
)

func runDelete(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		ref, rest := splitRef(args)
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
		yes := flags.Bool("yes", false, "Delete without asking for confirmation")
		if code, ok := parseFlags(cmd, flags, rest, stdout, stderr); !ok {
			return code
		}
		ref, ok := singleArg(ref, flags)
		if !ok {
			fmt.Fprintln(stderr, "delete requires exactly one question id")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := common.open(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Delete failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		record, err := bank.store.Resolve(ref)
		if err != nil {
			fmt.Fprintf(stderr, "Delete failed: %v\n", err)
			return ExitError
		}
		if !*yes {
			confirmed, err := promptYesNo(bufio.NewReader(stdin), stdout, fmt.Sprintf("Delete %q?", record.Question), false)
			if err != nil {
				fmt.Fprintf(stderr, "Delete failed: %v\n", err)
				return ExitError
			}
			if !confirmed {
				fmt.Fprintln(stdout, "Nothing deleted.")
				return ExitOK
			}
		}
		if err := bank.store.Delete(record.ID); err != nil {
			fmt.Fprintf(stderr, "Delete failed:\n%v\n", err)
			return ExitError
		}
		bank.log.Debug("question deleted", zap.String("id", record.ID))
		fmt.Fprintf(stdout, "Deleted question %s\n", record.ID)
		return ExitOK
	}
}
