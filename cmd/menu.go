package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keracoffee/kera/internal/coffee"
	"github.com/keracoffee/kera/internal/ui/styles"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the drinks we serve",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), styles.RenderTitledBox(coffee.MenuText(), "Menu", styles.CoffeeColor))
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
