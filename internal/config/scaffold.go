package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const defaultConfigTemplate = `version: 1
bank:
  path: %s

quiz:
  # 0 serves every question in the bank.
  limit: 0
  # 0 picks a new order on every run.
  seed: 0

ui:
  mode: auto
  no_color: false

export:
  duckdb_path: ".quizbank/bank.duckdb"
`

// Scaffold writes a default config file pointing at bankPath.
func Scaffold(configPath, bankPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if bankPath == "" {
		bankPath = DefaultBankFile
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	body := fmt.Sprintf(defaultConfigTemplate, strconv.Quote(filepath.ToSlash(bankPath)))
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
