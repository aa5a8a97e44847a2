package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside a project directory.
const FileName = "pennywise.yaml"

// Config represents the top-level pennywise.yaml configuration.
type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Report ReportConfig `yaml:"report"`
	Git    GitConfig    `yaml:"git"`
}

// LedgerConfig locates the ledger file within the project directory.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// ReportConfig sets the rolling report windows, in days.
type ReportConfig struct {
	WeeklyDays  int `yaml:"weekly_days"`
	MonthlyDays int `yaml:"monthly_days"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a pennywise.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			File: "ledger.json",
		},
		Report: ReportConfig{
			WeeklyDays:  7,
			MonthlyDays: 30,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Pennywise",
			AuthorEmail: "ledger@pennywise.dev",
		},
	}
}
