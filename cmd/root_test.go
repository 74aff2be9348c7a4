package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keracoffee/kera/internal/coffee"
	"github.com/keracoffee/kera/internal/log"
	"github.com/keracoffee/kera/internal/pace"
	"github.com/keracoffee/kera/internal/tracing"
)

// setupCmdTest isolates a test from the user's home directory and terminal, and
// replaces real pauses with a recorder.
func setupCmdTest(t *testing.T) *pace.Recorder {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(home)

	rec := &pace.Recorder{}
	origPacer := newPacer
	newPacer = func() pace.Pacer { return rec }
	t.Cleanup(func() { newPacer = origPacer })
	return rec
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag to its default, since cobra keeps flag values
// between executions of the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRoot_NoSubcommandPrintsHome(t *testing.T) {
	setupCmdTest(t)

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Kera Coffee Shop!")
	assert.Contains(t, out, "K E R A")
}

func TestRoot_UnknownCommand(t *testing.T) {
	setupCmdTest(t)

	_, err := execute(t, "espresso")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRoot_ConfigFileSetsClient(t *testing.T) {
	rec := setupCmdTest(t)
	path := writeConfig(t, "client: Gabi\nhistory:\n  enabled: false\n")

	out, err := execute(t, "--config", path, "order", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Hi, Gabi "+mustLookup(t, 4).Description)
	assert.Len(t, rec.Pauses(), 4)
}

func TestRoot_DotKeraYamlInWorkingDirectory(t *testing.T) {
	setupCmdTest(t)
	require.NoError(t, os.WriteFile(".kera.yaml", []byte("client: Ana\n"), 0600))

	out, err := execute(t, "order", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Hi, Ana ")
}

func TestRoot_EnvironmentOverridesConfig(t *testing.T) {
	setupCmdTest(t)
	path := writeConfig(t, "client: Gabi\n")
	t.Setenv("KERA_CLIENT", "Rui")

	out, err := execute(t, "--config", path, "order", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Hi, Rui ")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	setupCmdTest(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "menu")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestRoot_InvalidConfig(t *testing.T) {
	setupCmdTest(t)
	path := writeConfig(t, "client: \"  \"\n")

	_, err := execute(t, "--config", path, "menu")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "client")
}

func TestRoot_DebugWritesLog(t *testing.T) {
	setupCmdTest(t)

	t.Cleanup(func() { _ = log.Close() })
	t.Cleanup(func() { _ = tracing.Shutdown(context.Background()) })

	_, err := execute(t, "--debug", "menu")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), ".kera", "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Configuration loaded")
}

func TestRoot_DebugWritesSpans(t *testing.T) {
	setupCmdTest(t)
	t.Cleanup(func() { _ = log.Close() })

	_, err := execute(t, "--debug", "order", "3")
	require.NoError(t, err)
	require.NoError(t, tracing.Shutdown(context.Background()))

	data, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), ".kera", "trace.json"))
	require.NoError(t, err)
	for _, name := range []string{"order.serve", "order.brew", "journal.save"} {
		assert.Contains(t, string(data), `"Name":"`+name+`"`)
	}
}

func TestQuiet(t *testing.T) {
	assert.NoError(t, quiet(nil))
	assert.NoError(t, quiet(context.Canceled))
	assert.NoError(t, quiet(errors.Join(errors.New("pausing"), context.Canceled)))

	boom := errors.New("boom")
	assert.ErrorIs(t, quiet(boom), boom)
}

func TestVersion(t *testing.T) {
	setupCmdTest(t)

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "kera "), out)
}

func mustLookup(t *testing.T, id int) coffee.MenuEntry {
	t.Helper()
	e, ok := coffee.Lookup(id)
	require.True(t, ok)
	return e
}
