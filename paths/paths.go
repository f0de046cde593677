// Package paths resolves file locations used to persist non-cycle-exact
// state (preferences, saved snapshots) outside of the current working
// directory.
package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".c64ensemble"

// ResourcePath joins resource against the user's per-application resource
// directory, creating the directory (but not the file) if necessary.
func ResourcePath(resource ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	base := filepath.Join(home, baseResourcePath)
	if err := os.MkdirAll(base, 0o700); err != nil {
		return "", err
	}

	parts := append([]string{base}, resource...)
	return filepath.Join(parts...), nil
}
