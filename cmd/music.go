package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/keracoffee/kera/internal/log"
	"github.com/keracoffee/kera/internal/paths"
	"github.com/keracoffee/kera/internal/sound"
	"github.com/keracoffee/kera/internal/tracing"
	"github.com/keracoffee/kera/internal/ui/styles"
)

var musicCmd = &cobra.Command{
	Use:   "music <musicNumber>",
	Short: "Play a track from the playlist",
	Long: `Play one of the playlist tracks until you press q.

Tracks are read from music.dir (default ~/.kera/tracks) and played with the first
audio player found on the system, or the one named by music.player.`,
	Example: `  kera music 2
  kera music -- -1   # numbers starting with "-" need the -- separator`,
	Args:    cobra.ExactArgs(1),
	RunE:    runMusic,
}

func init() {
	rootCmd.AddCommand(musicCmd)
}

func runMusic(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("music number %q is not an integer", args[0])
	}

	out := cmd.OutOrStdout()
	track, ok := sound.LookupTrack(id)
	if !ok {
		fmt.Fprintln(out, styles.WarningStyle.Render(sound.InvalidTrack))
		return nil
	}

	ctx, span := tracing.Tracer().Start(cmd.Context(), "music.start",
		trace.WithAttributes(attribute.String("music.track", track.Asset())))

	var player sound.Player
	if p, err := sound.DetectPlayer(cfg.Music.Player, lookPath); err != nil {
		log.Warn(log.CatMusic, "No audio player", "error", err)
	} else {
		log.Debug(log.CatMusic, "Using player", "argv", p.Argv())
		span.SetAttributes(attribute.StringSlice("music.player", p.Argv()))
		player = p
	}

	library := sound.NewLibrary(paths.TracksDir(cfg.Music.Dir))
	playback, err := sound.NewJukebox(library, player).Start(id)
	tracing.Fail(span, err)
	span.End()
	if err != nil {
		log.ErrorErr(log.CatMusic, "Playback failed", err, "track", id)
		fmt.Fprintln(out, styles.WarningStyle.Render(err.Error()))
		return nil
	}
	defer func() {
		if err := playback.Stop(); err != nil {
			log.ErrorErr(log.CatMusic, "Stopping playback", err, "track", id)
		}
	}()

	fmt.Fprintln(out, styles.RenderLines(styles.NarrativeStyle, sound.Banner))
	return quiet(runJukebox(ctx, cmd.InOrStdin(), out, track, playback))
}
