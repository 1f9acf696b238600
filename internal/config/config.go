// Package config loads generator settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/bjquiz/internal/quiz"
	"github.com/lox/bjquiz/internal/strategy"
)

// DefaultFile is the config file read when none is given.
const DefaultFile = "bjquiz.hcl"

// Config represents the complete generator configuration
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Quiz     QuizSettings   `hcl:"quiz,block"`
	Output   OutputSettings `hcl:"output,block"`
}

// QuizSettings controls what is generated
type QuizSettings struct {
	Size     int      `hcl:"size,optional"`
	Versions []string `hcl:"versions,optional"`
	Chart    string   `hcl:"chart,optional"`
	Seed     *int64   `hcl:"seed,optional"`
	Parallel bool     `hcl:"parallel,optional"`
}

// OutputSettings controls where sheets are written
type OutputSettings struct {
	Dir      string `hcl:"dir,optional"`
	Manifest bool   `hcl:"manifest,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Quiz: QuizSettings{
			Size:     quiz.DefaultSize,
			Versions: []string{"A"},
			Chart:    strategy.DefaultChart,
		},
		Output: OutputSettings{
			Dir: ".",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Quiz.Size == 0 {
		cfg.Quiz.Size = defaults.Quiz.Size
	}
	if len(cfg.Quiz.Versions) == 0 {
		cfg.Quiz.Versions = defaults.Quiz.Versions
	}
	if cfg.Quiz.Chart == "" {
		cfg.Quiz.Chart = defaults.Quiz.Chart
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaults.Output.Dir
	}

	return &cfg, nil
}

// Validate checks settings that do not depend on the generator. Size and
// version labels are validated by the generator itself.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if _, err := strategy.ByName(c.Quiz.Chart); err != nil {
		return err
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output dir is required")
	}

	return nil
}
