// Package cmd wires the kera command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keracoffee/kera/internal/coffee"
	"github.com/keracoffee/kera/internal/config"
	"github.com/keracoffee/kera/internal/infrastructure/sqlite"
	"github.com/keracoffee/kera/internal/log"
	"github.com/keracoffee/kera/internal/pace"
	"github.com/keracoffee/kera/internal/paths"
	"github.com/keracoffee/kera/internal/tracing"
	"github.com/keracoffee/kera/internal/ui/jukebox"
	"github.com/keracoffee/kera/internal/ui/styles"
)

// skipConfigAnnotation marks commands that run without loading the config file.
const skipConfigAnnotation = "kera/skip-config"

var (
	cfgFile   string
	debugMode bool
	cfg       config.Config
)

// Collaborators replaced in tests.
var (
	newPacer    = func() pace.Pacer { return pace.New(nil) }
	newRand     = func() *rand.Rand { return nil }
	openJournal = sqlite.NewDB
	lookPath    = exec.LookPath
	runJukebox  = jukebox.Run
)

var rootCmd = &cobra.Command{
	Use:   "kera",
	Short: "A relaxing coffee shop in your terminal",
	Long: `Kera Coffee Shop brings the atmosphere of a quiet coffee shop to the terminal.
Order a drink, add sugar or blow it, listen to some music or take a breathing break.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugMode {
			if _, err := log.Init(paths.DebugLogPath()); err != nil {
				return fmt.Errorf("opening debug log: %w", err)
			}
			if _, err := tracing.Init(paths.TracePath()); err != nil {
				return fmt.Errorf("opening trace file: %w", err)
			}
		}
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			return nil
		}
		if err := loadConfig(); err != nil {
			return err
		}
		styles.ApplyColor(cfg.UI.Color)
		log.Debug(log.CatConfig, "Configuration loaded", "command", cmd.Name(), "client", cfg.Client)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), styles.RenderLines(styles.ArtStyle, coffee.Home))
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.kera.yaml or ~/.config/kera/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "write a debug log and spans to ~/.kera")
}

// Execute runs the root command until it completes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = log.Close() }()
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			log.ErrorErr(log.CatConfig, "Flushing spans", err)
		}
	}()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig reads the config file, if any, and KERA_ environment overrides into cfg.
func loadConfig() error {
	v := viper.New()
	defaults := config.Defaults()
	v.SetDefault("client", defaults.Client)
	v.SetDefault("ui.color", defaults.UI.Color)
	v.SetDefault("music.dir", defaults.Music.Dir)
	v.SetDefault("music.player", defaults.Music.Player)
	v.SetDefault("history.enabled", defaults.History.Enabled)
	v.SetDefault("history.path", defaults.History.Path)

	v.SetEnvPrefix("KERA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := cfgFile
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		v.SetConfigFile(paths.ExpandHome(path))
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Read config file", "path", v.ConfigFileUsed())
	}

	loaded := config.Config{}
	if err := v.Unmarshal(&loaded); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = loaded
	return nil
}

// findConfigFile returns the first existing default config location, or "".
func findConfigFile() string {
	for _, candidate := range []string{".kera.yaml", paths.DefaultConfigPath()} {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// quiet treats an interrupted command as a normal exit.
func quiet(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
