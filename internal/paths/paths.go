// Package paths resolves configuration and data directory locations and
// normalizes user-supplied matrix file paths.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultDataDirName is the CWD-relative data directory default.
const DefaultDataDirName = ".sparsem-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SPARSEM_CONFIG_DIR"
	EnvDataDir   = "SPARSEM_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// Normalize rewrites backslash separators in a matrix file path to
// forward slashes. Input files written on Windows historically carried
// backslashed paths; the rewrite keeps them loadable everywhere.
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/sparsem (fallback ~/.config/sparsem)
// macOS:   ~/Library/Application Support/sparsem
// Windows: %APPDATA%/sparsem
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "sparsem"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "sparsem"), nil
	default:
		// macOS and Windows use os.UserConfigDir, which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "sparsem"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SPARSEM_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml data_dir > SPARSEM_DATA_DIR env >
// $(CWD)/.sparsem-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
