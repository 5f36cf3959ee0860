package internal

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGolangciLintCompliance runs golangci-lint over the whole module so
// lint regressions surface in the normal test run.
//
// Skipped when golangci-lint is not on PATH; reproduce locally with
// `golangci-lint run` from the module root.
func TestGolangciLintCompliance(t *testing.T) {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		t.Skip("golangci-lint not found in PATH, skipping test")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	// The test package lives in internal/; the module root is its parent
	// unless the test binary was started from the root itself.
	moduleRoot := filepath.Dir(wd)
	if filepath.Base(wd) != "internal" {
		moduleRoot = wd
	}

	// Per-test build cache so the run works on runners where the default
	// cache directory is read-only.
	goCacheDir := t.TempDir()

	cmd := exec.Command("golangci-lint", "run", "--allow-parallel-runners", "./...")
	cmd.Dir = moduleRoot
	cmd.Env = append(os.Environ(), "GOCACHE="+goCacheDir)
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("golangci-lint found issues:\n%s", output)
		t.Errorf("\nRun 'golangci-lint run' to see all issues and fix them.")
	}
}
