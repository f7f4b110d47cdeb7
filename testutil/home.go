package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// IsolateHome points HOME and XDG_CONFIG_HOME at a fresh temporary directory
// so tests never read or write the developer's real configuration.
// Returns the XDG config directory.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	configHome := filepath.Join(home, ".config")

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)

	return configHome
}

// SetupRepoDir creates a directory that looks like the root of a git
// repository (it has a .git directory) and chdirs into it for the rest of
// the test. Returns the repository root.
func SetupRepoDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}

	t.Chdir(dir)

	return dir
}

// WriteFile writes content to a path under dir, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	return path
}
