package config

import (
	"testing"

	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	RegisterFlags(cmd)
	return cmd
}

func TestLoadConfig_Defaults(t *testing.T) {
	cmd := newTestCmd()
	cfg, err := LoadConfig(cmd, "/tmp/mailboxes")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BaseDir != "/tmp/mailboxes" {
		t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, "/tmp/mailboxes")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadConfig_NormalizesWarning(t *testing.T) {
	cmd := newTestCmd()
	if err := cmd.Flags().Set("log-level", "WARNING"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	cfg, err := LoadConfig(cmd, "/tmp/mailboxes")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoadConfig_RequiresBaseDir(t *testing.T) {
	cmd := newTestCmd()
	if _, err := LoadConfig(cmd, ""); err == nil {
		t.Error("expected error for empty base directory")
	}
}

func TestLoadConfig_RejectsInvalidLogLevel(t *testing.T) {
	cmd := newTestCmd()
	if err := cmd.Flags().Set("log-level", "verbose"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := LoadConfig(cmd, "/tmp/mailboxes"); err == nil {
		t.Error("expected error for invalid log level")
	}
}
