package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quizbank/internal/config"
	"quizbank/internal/logger"
	"quizbank/internal/store"
)

// bankFlags are the options every bank command accepts.
type bankFlags struct {
	configPath *string
	bankPath   *string
	verbose    *bool
}

// addBankFlags registers --config, --bank and --verbose.
func addBankFlags(flags *flag.FlagSet) bankFlags {
	return bankFlags{
		configPath: flags.String("config", "", "Path to config file (default: search for .quizbank/config.yml)"),
		bankPath:   flags.String("bank", "", "Path to the question bank file (overrides config)"),
		verbose:    flags.Bool("verbose", false, "Log diagnostics to stderr"),
	}
}

// bankContext is what a command needs to work on the bank.
type bankContext struct {
	store *store.Store
	cfg   config.Config
	log   *zap.Logger
}

// open resolves the config and bank path and builds the store.
func (f bankFlags) open(stderr io.Writer) (bankContext, error) {
	log := logger.New(stderr, *f.verbose)
	cfg, configPath, err := loadConfig(*f.configPath)
	if err != nil {
		return bankContext{log: log}, err
	}
	bankPath := cfg.BankPath()
	if value := strings.TrimSpace(*f.bankPath); value != "" {
		abs, err := filepath.Abs(value)
		if err != nil {
			return bankContext{log: log}, fmt.Errorf("resolve bank path: %w", err)
		}
		bankPath = abs
	}
	log.Debug("question bank resolved",
		zap.String("bank", bankPath),
		zap.String("config", configPath),
	)
	return bankContext{store: store.New(bankPath), cfg: cfg, log: log}, nil
}

// loadConfig loads an explicit config, or discovers one, or falls back to defaults.
func loadConfig(explicit string) (config.Config, string, error) {
	if value := strings.TrimSpace(explicit); value != "" {
		abs, err := filepath.Abs(value)
		if err != nil {
			return config.Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := config.Load(abs)
		return cfg, abs, err
	}
	path, err := config.FindConfigPath("")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return config.Config{}, "", err
		}
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return config.Config{}, "", fmt.Errorf("get working directory: %w", wdErr)
		}
		return config.Default(wd), "", nil
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

// parseFlags parses args and reports whether the command should continue.
// When it should not, the returned code is the exit status.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// splitRef separates a leading positional reference from flag arguments, so
// both "edit <id> --a x" and "edit --a x <id>" work.
func splitRef(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}

// singleArg combines a leading positional argument with any left after flag
// parsing and reports whether exactly one was given.
func singleArg(leading string, flags *flag.FlagSet) (string, bool) {
	positional := flags.Args()
	if leading != "" {
		positional = append([]string{leading}, positional...)
	}
	if len(positional) != 1 || strings.TrimSpace(positional[0]) == "" {
		return "", false
	}
	return positional[0], true
}

// shortID trims an identifier for listings.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// stdin is where interactive commands read answers; tests override it.
var stdin io.Reader = os.Stdin
