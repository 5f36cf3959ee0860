package styles

import (
	"os"
	"path/filepath"
	"testing"
)

const validTheme = `name: Midnight
version: "1"
colors:
  primary: "#BB9AF7"
  secondary: "#9ECE6A"
  warning: "#E0AF68"
  error: "#F7768E"
  muted: "#565F89"
  surface: "#1A1B26"
  text: "#C0CAF5"
  border: "#414868"
`

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	return path
}

func TestLoadThemeFile_Valid(t *testing.T) {
	theme, err := LoadThemeFile(writeTheme(t, validTheme))
	if err != nil {
		t.Fatalf("LoadThemeFile failed: %v", err)
	}
	if theme.Name != "Midnight" {
		t.Errorf("Name = %q", theme.Name)
	}
	if theme.Colors.Primary != "#BB9AF7" {
		t.Errorf("Primary = %q", theme.Colors.Primary)
	}
}

func TestLoadThemeFile_MissingFile(t *testing.T) {
	if _, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadThemeFile_BadYAML(t *testing.T) {
	if _, err := LoadThemeFile(writeTheme(t, "{not yaml")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestThemeFile_Validate(t *testing.T) {
	base := func() *ThemeFile {
		return &ThemeFile{
			Name:    "Test",
			Version: "1",
			Colors: ThemeColors{
				Primary: "#FFF", Secondary: "#000000", Warning: "#ABCDEF",
				Error: "#123", Muted: "#456", Surface: "#789",
				Text: "#AAA", Border: "#BBB",
			},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid theme should pass: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ThemeFile)
	}{
		{"missing name", func(f *ThemeFile) { f.Name = "" }},
		{"bad version", func(f *ThemeFile) { f.Version = "2" }},
		{"missing color", func(f *ThemeFile) { f.Colors.Muted = "" }},
		{"non-hex color", func(f *ThemeFile) { f.Colors.Error = "red" }},
		{"bad hex length", func(f *ThemeFile) { f.Colors.Text = "#ABCD" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := base()
			tt.mutate(theme)
			if err := theme.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyTheme_Default(t *testing.T) {
	if err := ApplyTheme("default"); err != nil {
		t.Errorf("default theme should apply without error: %v", err)
	}
	if err := ApplyTheme(""); err != nil {
		t.Errorf("empty theme name should apply without error: %v", err)
	}
}

func TestApplyTheme_Custom(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	themesDir := filepath.Join(dir, "concierge", "themes")
	if err := os.MkdirAll(themesDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(themesDir, "midnight.yaml"), []byte(validTheme), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ApplyTheme("midnight"); err != nil {
		t.Fatalf("ApplyTheme failed: %v", err)
	}
	t.Cleanup(func() {
		// Restore the built-in palette for other tests.
		(&ThemeFile{
			Name:    "builtin",
			Version: "1",
			Colors: ThemeColors{
				Primary: "#A78BFA", Secondary: "#10B981", Warning: "#F59E0B",
				Error: "#F87171", Muted: "#9CA3AF", Surface: "#1F2937",
				Text: "#F9FAFB", Border: "#6B7280",
			},
		}).Apply()
	})

	if PrimaryColor != "#BB9AF7" {
		t.Errorf("PrimaryColor = %q after applying theme", PrimaryColor)
	}
}

func TestApplyTheme_UnknownName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := ApplyTheme("does-not-exist"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
