package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
)

func runEdit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		ref, rest := splitRef(args)
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addBankFlags(flags)
		fields := addRecordFlags(flags)
		if code, ok := parseFlags(cmd, flags, rest, stdout, stderr); !ok {
			return code
		}
		ref, ok := singleArg(ref, flags)
		if !ok {
			fmt.Fprintln(stderr, "edit requires exactly one question id")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := common.open(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = bank.log.Sync() }()

		current, err := bank.store.Resolve(ref)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		// Without field flags, walk every field with the current value as default.
		edited, err := fields.fill(current, bufio.NewReader(stdin), stdout, !fields.anySet())
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		stored, err := bank.store.Update(current.ID, edited)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed:\n%v\n", err)
			return ExitError
		}
		bank.log.Debug("question updated", zap.String("id", stored.ID))
		fmt.Fprintf(stdout, "Updated question %s\n", stored.ID)
		return ExitOK
	}
}
