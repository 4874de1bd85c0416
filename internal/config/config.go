package config

import (
	"fmt"
	"strings"

	"stretchwin/internal/infrastructure/logging"
	"stretchwin/internal/platform"
	"stretchwin/internal/types"
)

// Config holds the options for one stretch invocation
type Config struct {
	// Which processes are inspected for an editor window
	Scope platform.ProcessScope `json:"scope" yaml:"scope"`
	// Editors that may be stretched
	Signatures []types.Signature `json:"signatures" yaml:"signatures"`
	// Compute and report the target without moving any window
	DryRun bool `json:"dryRun" yaml:"dryRun"`

	// Environment and runtime settings
	Environment string `json:"environment" yaml:"environment"` // Environment (development, production, test)
	LogLevel    string `json:"logLevel" yaml:"logLevel"`       // debug, info, warn, error
}

// DefaultConfig returns the production configuration.
// Only the calling process is inspected, as when running inside the editor.
func DefaultConfig() *Config {
	return &Config{
		Scope:       platform.ScopeCurrentProcess,
		Signatures:  types.DefaultSignatures(),
		DryRun:      false,
		Environment: "production",
		LogLevel:    "info",
	}
}

// DevelopmentConfig returns a configuration with debug logging
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Environment = "development"
	config.LogLevel = "debug"
	return config
}

// TestConfig returns a configuration for tests: quiet, and nothing is moved
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = "test"
	config.LogLevel = "error"
	config.DryRun = true
	return config
}

// ConfigForEnvironment returns the configuration for the named environment,
// falling back to production for unknown names
func ConfigForEnvironment(env string) *Config {
	switch strings.ToLower(env) {
	case "development", "dev":
		return DevelopmentConfig()
	case "test", "testing":
		return TestConfig()
	default:
		return DefaultConfig()
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if !c.Scope.Valid() {
		return fmt.Errorf("invalid process scope %v", c.Scope)
	}

	if len(c.Signatures) == 0 {
		return fmt.Errorf("at least one editor signature is required")
	}
	for i, s := range c.Signatures {
		if strings.TrimSpace(s.NameFragment) == "" || strings.TrimSpace(s.TitleFragment) == "" {
			return fmt.Errorf("signature %d must set both name and title fragments", i)
		}
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	clone.Signatures = append([]types.Signature(nil), c.Signatures...)
	return &clone
}
