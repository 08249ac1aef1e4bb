// SPDX-License-Identifier: MPL-2.0

// Package appdir resolves per-application directories using each platform's
// conventions and loads configuration files from them.
package appdir

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/axlekit/axle/internal/platform"
	"github.com/axlekit/axle/pkg/diag"
)

// configDirOverride redirects ConfigDir, for tests.
var configDirOverride string

// SetConfigDirOverride redirects ConfigDir to dir. Pass "" to restore the
// platform default. Intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the configuration directory for the named application:
// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_CONFIG_HOME (defaulting to ~/.config) elsewhere.
func ConfigDir(app string) (string, error) {
	if configDirOverride != "" {
		return filepath.Join(configDirOverride, app), nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", diag.Wrap(err, "resolve home directory")
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", diag.Wrap(err, "resolve home directory")
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, app), nil
}

// DataDir returns the data directory for the named application:
// %LOCALAPPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_DATA_HOME (defaulting to ~/.local/share) elsewhere.
func DataDir(app string) (string, error) {
	var dataDir string

	switch runtime.GOOS {
	case platform.Windows:
		dataDir = os.Getenv("LOCALAPPDATA")
		if dataDir == "" {
			dataDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", diag.Wrap(err, "resolve home directory")
		}
		dataDir = filepath.Join(home, "Library", "Application Support")
	default:
		dataDir = os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", diag.Wrap(err, "resolve home directory")
			}
			dataDir = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(dataDir, app), nil
}
