package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keracoffee/kera/internal/barista"
	"github.com/keracoffee/kera/internal/coffee"
	"github.com/keracoffee/kera/internal/log"
	"github.com/keracoffee/kera/internal/paths"
)

var (
	orderSugar bool
	orderBlow  bool
)

var orderCmd = &cobra.Command{
	Use:   "order <orderNumber> [client]",
	Short: "Order a drink from the menu",
	Long: `Order a drink by its menu number. The barista greets you by name, prepares the
drink and serves it the way you asked: with sugar, blown, or both.`,
	Example: `  kera order 2
  kera order 3 Gabi --sugar --blow
  kera order -- -1   # numbers starting with "-" need the -- separator`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runOrder,
}

func init() {
	orderCmd.Flags().BoolVarP(&orderSugar, "sugar", "s", false, "add sugar to your drink")
	orderCmd.Flags().BoolVarP(&orderBlow, "blow", "b", false, "blow your drink to cool it down")
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("order number %q is not an integer", args[0])
	}

	client := cfg.Client
	if len(args) == 2 {
		client = args[1]
	}

	var opts []barista.Option
	if cfg.History.Enabled && coffee.ValidOrder(number) {
		db, err := openJournal(paths.DatabasePath(cfg.History.Path))
		if err != nil {
			// The order is served either way.
			log.ErrorErr(log.CatDB, "Order journal unavailable", err)
		} else {
			defer func() { _ = db.Close() }()
			opts = append(opts, barista.WithJournal(db.Receipts()))
		}
	}

	b := barista.New(cmd.OutOrStdout(), newPacer(), opts...)
	return quiet(b.Serve(cmd.Context(), barista.Order{
		Number: number,
		Client: client,
		Sugar:  orderSugar,
		Blow:   orderBlow,
	}))
}
