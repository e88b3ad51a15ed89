// Package filex holds small filesystem helpers for the client.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir returns <user config dir>/<app>, falling back to a dot
// directory in the working directory when the platform reports none.
func DefaultDataDir(app string) string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "." + app
	}
	return filepath.Join(base, app)
}

// EnsureDir creates dir (and parents) readable only by the current user and
// returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
