package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level gicbank.yaml configuration.
type Config struct {
	Bank      BankConfig `yaml:"bank"`
	SeedRules []SeedRule `yaml:"interest_rules,omitempty"`
	AuditLog  string     `yaml:"audit_log,omitempty"`
}

// BankConfig identifies the bank presented by the console.
type BankConfig struct {
	Name string `yaml:"name"`
}

// SeedRule is an interest rule applied through the engine at startup, so
// the same validation as interactive entry applies.
type SeedRule struct {
	Date        string `yaml:"date"` // YYYYMMdd
	RuleID      string `yaml:"rule_id"`
	RatePercent string `yaml:"rate_percent"`
}

// Load reads a gicbank.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Bank.Name == "" {
		cfg.Bank.Name = Default().Bank.Name
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

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Bank: BankConfig{Name: "AwesomeGIC Bank"},
	}
}
