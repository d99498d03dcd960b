package config

import "strings"

// Normalize fills defaults for omitted keys.
func Normalize(cfg *Config) {
	cfg.Bank.Path = strings.TrimSpace(cfg.Bank.Path)
	if cfg.Bank.Path == "" {
		cfg.Bank.Path = DefaultBankFile
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	cfg.Export.DuckDBPath = strings.TrimSpace(cfg.Export.DuckDBPath)
}
