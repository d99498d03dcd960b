package config

// Config is the contents of .quizbank/config.yml.
type Config struct {
	Version int          `yaml:"version"`
	Bank    BankConfig   `yaml:"bank"`
	Quiz    QuizConfig   `yaml:"quiz"`
	UI      UIConfig     `yaml:"ui"`
	Export  ExportConfig `yaml:"export"`

	// Root is the directory relative paths are resolved against.
	Root string `yaml:"-"`
}

// BankConfig locates the question bank file.
type BankConfig struct {
	Path string `yaml:"path"`
}

// QuizConfig holds defaults for the take command.
type QuizConfig struct {
	Limit int    `yaml:"limit"`
	Seed  uint64 `yaml:"seed"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	DuckDBPath string `yaml:"duckdb_path"`
}

// Default returns the configuration used when no config file exists.
func Default(root string) Config {
	cfg := Config{Version: 1, Root: root}
	Normalize(&cfg)
	return cfg
}

// BankPath returns the absolute-or-root-relative bank file path.
func (cfg Config) BankPath() string {
	return cfg.resolve(cfg.Bank.Path)
}

// DuckDBPath returns the export database path, or "" when unset.
func (cfg Config) DuckDBPath() string {
	if cfg.Export.DuckDBPath == "" {
		return ""
	}
	return cfg.resolve(cfg.Export.DuckDBPath)
}
