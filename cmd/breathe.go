package cmd

import (
	"github.com/spf13/cobra"

	"github.com/keracoffee/kera/internal/breathing"
	"github.com/keracoffee/kera/internal/log"
)

var (
	breatheFocus bool
	breatheRelax bool
)

var breatheCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Take a guided breathing break",
	Long: `Walk through a short breathing exercise. Choose --focus to get back to work
or --relax to slow down; without a flag one of them is picked for you.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		guide := breathing.NewGuide(cmd.OutOrStdout(), newPacer(), newRand())
		name, err := guide.Session(cmd.Context(), breatheFocus, breatheRelax)
		log.Debug(log.CatBreathe, "Session ended", "script", name, "error", err)
		return quiet(err)
	},
}

func init() {
	breatheCmd.Flags().BoolVarP(&breatheFocus, "focus", "f", false, "breathe to focus")
	breatheCmd.Flags().BoolVarP(&breatheRelax, "relax", "r", false, "breathe to relax")
	rootCmd.AddCommand(breatheCmd)
}
