package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/saveup-dev/saveup/internal/ledger"
)

// FileName is the project configuration file at the project root.
const FileName = "saveup.yaml"

// Config represents the top-level saveup.yaml configuration.
type Config struct {
	Owner   OwnerConfig    `yaml:"owner"`
	Import  ImportConfig   `yaml:"import"`
	Ledger  LedgerConfig   `yaml:"ledger"`
	Git     GitConfig      `yaml:"git"`
	Logging LoggingConfig  `yaml:"logging"`
	Budgets []BudgetConfig `yaml:"budgets,omitempty"`
	Goals   []GoalConfig   `yaml:"goals,omitempty"`
}

// OwnerConfig identifies whose money this is.
type OwnerConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217 code used for display
}

// ImportConfig controls where statements are picked up and how they are read.
type ImportConfig struct {
	Dir          string `yaml:"dir"`
	ProcessedDir string `yaml:"processed_dir"`
	Account      string `yaml:"account"` // account label given to imported rows
	Format       string `yaml:"format"`  // parser name, "auto" by default
}

// LedgerConfig locates the transaction store.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// BudgetConfig is a monthly spending limit for one category.
type BudgetConfig struct {
	Category string          `yaml:"category"`
	Amount   decimal.Decimal `yaml:"amount"`
}

// GoalConfig is a savings target.
type GoalConfig struct {
	Name       string          `yaml:"name"`
	Target     decimal.Decimal `yaml:"target"`
	Saved      decimal.Decimal `yaml:"saved"`
	TargetDate string          `yaml:"target_date,omitempty"` // YYYY-MM-DD
}

// Load reads a saveup.yaml file from disk. Unset fields take their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadDir loads saveup.yaml from a project root.
func LoadDir(root string) (*Config, error) {
	return Load(filepath.Join(root, FileName))
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(ownerName string) *Config {
	return &Config{
		Owner: OwnerConfig{
			Name:     ownerName,
			Currency: "USD",
		},
		Import: ImportConfig{
			Dir:          "import",
			ProcessedDir: filepath.Join("import", "processed"),
			Account:      "Imported",
			Format:       "auto",
		},
		Ledger: LedgerConfig{
			Path: filepath.FromSlash(ledger.DefaultPath),
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "SaveUp Importer",
			AuthorEmail: "importer@saveup.dev",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Resolve joins a config-relative path onto root. Absolute paths are kept.
func Resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
