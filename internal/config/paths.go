// Package config handles configuration loading, saving, and path
// management under ~/.hearth.
package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the global hearth directory.
const GlobalDirName = ".hearth"

// File names inside the global directory.
const (
	DaemonFileName   = "daemon.yaml"
	SettingsFileName = "settings.yaml"
	PrefsFileName    = "prefs.db"
)

// GlobalDir returns the path to the global hearth directory (~/.hearth/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalPrefsFile returns the path to the panel preference database.
func GlobalPrefsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, PrefsFileName), nil
}

// EnsureGlobalDir creates the global hearth directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
