// Package paths resolves the trailkit configuration and data directories and
// locates session scripts inside the data directory.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config and data
// roots.
const appDirName = "trailkit"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "TRAILKIT_CONFIG_DIR"
	EnvDataDir   = "TRAILKIT_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/trailkit (fallback ~/.config/trailkit)
// macOS:   ~/Library/Application Support/trailkit
// Windows: %APPDATA%/trailkit
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory, where
// session scripts are looked up.
//
// Linux:   $XDG_DATA_HOME/trailkit (fallback ~/.local/share/trailkit)
// macOS:   ~/Library/Application Support/trailkit
// Windows: %APPDATA%/trailkit
func DefaultDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func xdgDir(env, homeFallback string) (string, error) {
	if runtime.GOOS != "linux" {
		// macOS and Windows keep config and data together under
		// os.UserConfigDir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeFallback, appDirName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > TRAILKIT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > TRAILKIT_DATA_DIR env > configYAMLValue > DefaultDataDir(). This is
// the same order the output setting follows.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	return DefaultDataDir()
}

// ResolveScript returns the path of a session script. An absolute name, or a
// relative name that exists from the working directory, is used as given;
// otherwise the name is looked up in dataDir.
func ResolveScript(name, dataDir string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return filepath.Abs(name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat script: %w", err)
	}
	if dataDir == "" {
		return filepath.Abs(name)
	}
	return filepath.Join(dataDir, name), nil
}
