package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello..."},
		{"tiny maxLen returns ellipsis", "hello", 3, "..."},
		{"zero maxLen returns ellipsis", "hello", 0, "..."},
		{"empty string unchanged", "", 10, ""},
		{"unicode counted by rune", "日本語テスト", 5, "日本..."},
		{"mixed ascii and unicode", "hello日本語world", 10, "hello日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	if got := TruncateANSI("hello", 10); got != "hello" {
		t.Errorf("short string should be unchanged, got %q", got)
	}
	if got := TruncateANSI("hello world", 8); got != "hello..." {
		t.Errorf("plain truncation = %q, want %q", got, "hello...")
	}
	if got := TruncateANSI("hello", 2); got != "..." {
		t.Errorf("tiny width should return bare ellipsis, got %q", got)
	}

	styled := red.Render("hi")
	if got := TruncateANSI(styled, 10); got != styled {
		t.Error("styled string under the limit should be unchanged")
	}
	if w := lipgloss.Width(TruncateANSI(red.Render("hello world"), 8)); w > 8 {
		t.Errorf("styled truncation width = %d, want <= 8", w)
	}
	if w := lipgloss.Width(TruncateANSI("日本語テスト", 8)); w > 8 {
		t.Errorf("wide-rune truncation width = %d, want <= 8", w)
	}
}
