package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/keracoffee/kera/internal/coffee"
	"github.com/keracoffee/kera/internal/log"
)

const aboutWidth = 80

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Read about the coffee shop",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), renderAbout(cfg.UI.Color && os.Getenv("NO_COLOR") == ""))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

// renderAbout renders the shop description as terminal markdown, falling back to
// wrapped plain text when the renderer fails.
func renderAbout(color bool) string {
	styleOpt := glamour.WithStandardStyle("notty")
	if color {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(aboutWidth))
	if err == nil {
		var out string
		out, err = r.Render(coffee.About)
		if err == nil {
			return out
		}
	}

	log.ErrorErr(log.CatUI, "Markdown rendering failed", err)
	return wordwrap.String(coffee.About, aboutWidth) + "\n"
}
