package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_TableDriven(t *testing.T) {
	testCases := []struct {
		name       string
		configured string
		base       string
		file       string
		expected   string
	}{
		{"empty uses base", "", "/data", "kera.db", "/data/kera.db"},
		{"whitespace uses base", "   ", "/data", "tracks", "/data/tracks"},
		{"absolute configured", "/srv/music", "/data", "tracks", "/srv/music"},
		{"configured is cleaned", "/srv/music/../tracks/", "/data", "tracks", "/srv/tracks"},
		{"relative configured", "./tracks", "/data", "tracks", "tracks"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.configured, filepath.FromSlash(tc.base), tc.file)
			require.Equal(t, filepath.FromSlash(tc.expected), got)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	require.Equal(t, home, ExpandHome("~"))
	require.Equal(t, filepath.Join(home, "music"), ExpandHome("~/music"))
	require.Equal(t, "~other/music", ExpandHome("~other/music"))
	require.Equal(t, "/abs", ExpandHome("/abs"))
}

func TestDefaults_UnderDataDir(t *testing.T) {
	require.Equal(t, filepath.Join(DataDir(), "tracks"), TracksDir(""))
	require.Equal(t, filepath.Join(DataDir(), "kera.db"), DatabasePath(""))
	require.Equal(t, filepath.Join(DataDir(), "debug.log"), DebugLogPath())
	require.Equal(t, filepath.Join(DataDir(), "trace.json"), TracePath())
	require.Equal(t, filepath.Join(ConfigDir(), "config.yaml"), DefaultConfigPath())
}
