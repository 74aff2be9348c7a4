// Package config provides configuration types and defaults for kera.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultClient is the name used when an order does not name its client.
const DefaultClient = "client"

// Config holds all configuration options for kera.
type Config struct {
	Client  string        `mapstructure:"client"`
	UI      UIConfig      `mapstructure:"ui"`
	Music   MusicConfig   `mapstructure:"music"`
	History HistoryConfig `mapstructure:"history"`
}

// UIConfig holds terminal output options.
type UIConfig struct {
	// Color enables lipgloss styling. NO_COLOR in the environment also disables it.
	Color bool `mapstructure:"color"`
}

// MusicConfig controls where tracks live and how they are played.
type MusicConfig struct {
	// Dir holds music1.mp3..music4.mp3. Empty means ~/.kera/tracks.
	Dir string `mapstructure:"dir"`

	// Player overrides player detection, e.g. "mpv --no-video".
	// The track path is appended as the last argument.
	Player string `mapstructure:"player"`
}

// HistoryConfig controls the order journal.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Path is the SQLite database file. Empty means ~/.kera/kera.db.
	Path string `mapstructure:"path"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Client: DefaultClient,
		UI: UIConfig{
			Color: true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Client) == "" {
		return fmt.Errorf("client: must not be empty")
	}
	if c.Music.Player != "" && len(strings.Fields(c.Music.Player)) == 0 {
		return fmt.Errorf("music.player: must name a command")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Kera Coffee Shop Configuration

# Name the barista calls out when an order does not give one
client: client

# Terminal output
ui:
  color: true        # Set to false (or export NO_COLOR) for plain output

# Music
music:
  # Directory holding music1.mp3 .. music4.mp3 (default: ~/.kera/tracks)
  dir: ""
  # Player command; the track path is appended as the last argument.
  # When empty kera looks for afplay (macOS) or mpg123, ffplay and mpv.
  # Example: mpv --no-video
  player: ""

# Order journal shown by 'kera history'
history:
  enabled: true
  path: ""           # default: ~/.kera/kera.db
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
