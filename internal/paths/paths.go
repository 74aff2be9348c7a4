// Package paths resolves the on-disk locations kera reads and writes.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "kera"

// ConfigDir returns ~/.config/kera, or the relative ".kera" when no home directory
// can be determined.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultConfigPath returns the user config file location.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns ~/.kera, the home of the order journal, tracks and debug log.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, "."+appName)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Resolve returns the configured path cleaned and home-expanded, or name joined onto
// base when nothing is configured.
func Resolve(configured, base, name string) string {
	configured = strings.TrimSpace(configured)
	if configured == "" {
		return filepath.Join(base, name)
	}
	return filepath.Clean(ExpandHome(configured))
}

// TracksDir returns the directory holding music1.mp3..music4.mp3.
func TracksDir(configured string) string {
	return Resolve(configured, DataDir(), "tracks")
}

// DatabasePath returns the order journal location.
func DatabasePath(configured string) string {
	return Resolve(configured, DataDir(), appName+".db")
}

// DebugLogPath returns where --debug writes its log.
func DebugLogPath() string {
	return filepath.Join(DataDir(), "debug.log")
}

// TracePath returns where --debug writes spans.
func TracePath() string {
	return filepath.Join(DataDir(), "trace.json")
}
