package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HomeEnv overrides the state directory, mostly for tests and CI.
	HomeEnv = "MIBAND_HOME"

	appName = "miband"
	dbName  = "miband.db"
)

// Dir returns $MIBAND_HOME when set and ~/.config/miband otherwise.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(base, ".config", appName), nil
}

// SessionDB creates the state directory if needed and returns the path of
// the SQLite file holding the stored session.
func SessionDB() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return filepath.Join(dir, dbName), nil
}
