package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level paylens.yaml configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Datasets  DatasetsConfig  `yaml:"datasets"`
	Reports   ReportsConfig   `yaml:"reports"`
	Git       GitConfig       `yaml:"git"`
}

// WorkspaceConfig identifies the analysis workspace.
type WorkspaceConfig struct {
	Name string `yaml:"name"`
}

// DatasetsConfig holds the input CSV paths, relative to the workspace
// root unless absolute.
type DatasetsConfig struct {
	Payments     string `yaml:"payments"`
	Products     string `yaml:"products"`
	Transactions string `yaml:"transactions"`
}

// ReportsConfig controls report output.
type ReportsConfig struct {
	TopSources int `yaml:"top_sources"` // 0 = show all sources
}

// GitConfig controls git integration for exports.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a paylens.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new workspace.
func Default(name string) *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Name: name,
		},
		Datasets: DatasetsConfig{
			Payments:     "datasets/payments.csv",
			Products:     "datasets/products.csv",
			Transactions: "datasets/transactions.csv",
		},
		Reports: ReportsConfig{
			TopSources: 10,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Paylens",
			AuthorEmail: "reports@paylens.dev",
		},
	}
}
