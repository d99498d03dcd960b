package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizbank <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizbank <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .quizbank/config.yml", []string{
		"quizbank init [--config <path>] [--bank <path>]",
	}, runInit),
	command("add", "Add a question to the bank", []string{
		"quizbank add [--question <text>] [--a <text>] [--b <text>] [--c <text>] [--d <text>] [--answer <a|b|c|d>]",
	}, runAdd),
	command("import", "Import questions from a YAML or JSON file", []string{
		"quizbank import <file.yml|file.json>",
	}, runImport),
	command("list", "List the questions in the bank", []string{
		"quizbank list",
	}, runList),
	command("show", "Show one question", []string{
		"quizbank show <id>",
	}, runShow),
	command("edit", "Edit a question in place", []string{
		"quizbank edit <id> [--question <text>] [--a <text>] [--b <text>] [--c <text>] [--d <text>] [--answer <a|b|c|d>]",
	}, runEdit),
	command("delete", "Delete a question", []string{
		"quizbank delete <id> [--yes]",
	}, runDelete),
	command("take", "Take a quiz drawn from the bank", []string{
		"quizbank take [--limit <n>] [--seed <n>] [--ui auto|live|plain] [--no-color]",
	}, runTake),
	command("validate", "Check the config and every line of the bank", []string{
		"quizbank validate",
	}, runValidate),
	command("export", "Export the bank to a DuckDB database", []string{
		"quizbank export [--out <file.duckdb>]",
	}, runExport),
}
