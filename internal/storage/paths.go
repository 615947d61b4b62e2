// Package storage keeps a named library of decoded positions in BadgerDB.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvDir names the environment variable that overrides the library
// location when no directory is passed explicitly.
const EnvDir = "CHESSCORE_DB"

// ResolveDir picks the library directory and makes sure it exists.
// An explicit dir wins, then $CHESSCORE_DB, then <data home>/chesscore/db
// where data home is the platform's per-user application data location.
func ResolveDir(dir string) (string, error) {
	if dir == "" {
		dir = os.Getenv(EnvDir)
	}
	if dir == "" {
		home, err := dataHome()
		if err != nil {
			return "", fmt.Errorf("locate data directory: %w", err)
		}
		dir = filepath.Join(home, "chesscore", "db")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create library directory: %w", err)
	}
	return dir, nil
}

// dataHome returns the per-user data root: %APPDATA% on Windows,
// ~/Library/Application Support on macOS, $XDG_DATA_HOME or ~/.local/share
// elsewhere.
func dataHome() (string, error) {
	env, rel := "XDG_DATA_HOME", []string{".local", "share"}
	switch runtime.GOOS {
	case "windows":
		env, rel = "APPDATA", []string{"AppData", "Roaming"}
	case "darwin":
		env, rel = "", []string{"Library", "Application Support"}
	}

	if env != "" {
		if d := os.Getenv(env); d != "" {
			return d, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, rel...)...), nil
}
