package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keracoffee/kera/internal/paths"
	"github.com/keracoffee/kera/internal/sound"
	"github.com/keracoffee/kera/internal/ui/styles"
)

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "List the tracks you can play",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.RenderTitledBox(sound.PlaylistText(), "Playlist", styles.MintColor))
		fmt.Fprintln(out, styles.MutedStyle.Render(installedNote(sound.NewLibrary(paths.TracksDir(cfg.Music.Dir)))))
	},
}

func init() {
	rootCmd.AddCommand(playlistCmd)
}

// installedNote says which playlist tracks are present in the library.
func installedNote(library *sound.Library) string {
	available := library.Available()
	switch len(available) {
	case len(sound.Tracks()):
		return "All tracks installed in " + library.Dir()
	case 0:
		return fmt.Sprintf("No tracks installed in %s (add %s..%s)",
			library.Dir(), sound.AssetName(sound.MinTrack), sound.AssetName(sound.MaxTrack))
	}
	ids := make([]string, len(available))
	for i, t := range available {
		ids[i] = strconv.Itoa(t.ID)
	}
	return fmt.Sprintf("Installed in %s: %s", library.Dir(), strings.Join(ids, ", "))
}
