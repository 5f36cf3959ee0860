package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "concierge" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "concierge")
	}

	// Check for expected subcommands (compare by Name(), not Use which includes args)
	expectedCmds := []string{"start", "status", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, name := range expectedCmds {
		if !cmdMap[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestConfigPathCommand(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	output, err := executeCommand(rootCmd, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	want := filepath.Join(configHome, "concierge", "config.yaml")
	if !strings.Contains(output, want) {
		t.Errorf("output = %q, want it to contain %q", output, want)
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	err := runConfigSet(configSetCmd, []string{"service.nope", "x"})
	if err == nil || !strings.Contains(err.Error(), "unknown configuration key") {
		t.Errorf("expected unknown-key error, got %v", err)
	}
}

func TestConfigSetInvalidValues(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	tests := []struct {
		key   string
		value string
	}{
		{"trip.travelers", "zero"},
		{"trip.travelers", "0"},
		{"service.timeout_seconds", "-5"},
		{"logging.level", "loud"},
	}
	for _, tt := range tests {
		if err := runConfigSet(configSetCmd, []string{tt.key, tt.value}); err == nil {
			t.Errorf("set %s=%s should fail", tt.key, tt.value)
		}
	}
}

func TestConfigSetWritesFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := runConfigSet(configSetCmd, []string{"trip.travelers", "3"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "concierge", "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "travelers: 3") {
		t.Errorf("config file missing value:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Error("second init should refuse to overwrite")
	}
}
