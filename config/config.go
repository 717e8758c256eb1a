// Package config registers and loads the CLI flags shared by the REPL
// root command and the `import` subcommand.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Config captures the options common to every mua invocation.
type Config struct {
	BaseDir  string
	LogLevel string
}

// RegisterFlags attaches the shared flags to cmd.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "info", "Logging level: debug, info, warn, error")
	cmd.Flags().AddFlagSet(cmd.PersistentFlags())
}

// LoadConfig reads baseDir (the REPL's target directory) and the shared
// flags into a Config.
func LoadConfig(cmd *cobra.Command, baseDir string) (Config, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return Config{}, err
	}
	logLevel = strings.ToLower(logLevel)
	if logLevel == "warning" {
		logLevel = "warn"
	}

	cfg := Config{BaseDir: baseDir, LogLevel: logLevel}
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	if cfg.BaseDir == "" {
		return fmt.Errorf("base directory is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level: %s", cfg.LogLevel)
	}
	return nil
}
