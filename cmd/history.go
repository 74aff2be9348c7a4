package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/keracoffee/kera/internal/orders/domain"
	"github.com/keracoffee/kera/internal/paths"
	"github.com/keracoffee/kera/internal/ui/styles"
)

const defaultHistoryLimit = 10

var (
	historyLimit   int
	historyReceipt string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the orders you have been served",
	Example: `  kera history -n 3
  kera history --receipt 3f0c8a2e-5b1d-4c47-9a7e-2d1f6b8e4c10`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "number of orders to show")
	historyCmd.Flags().StringVar(&historyReceipt, "receipt", "", "show one receipt by its id")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !cfg.History.Enabled {
		fmt.Fprintln(out, styles.MutedStyle.Render("The order journal is disabled (history.enabled: false)"))
		return nil
	}

	db, err := openJournal(paths.DatabasePath(cfg.History.Path))
	if err != nil {
		return fmt.Errorf("opening order journal: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := db.Receipts()
	if historyReceipt != "" {
		return showReceipt(out, repo, historyReceipt)
	}

	receipts, err := repo.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("listing orders: %w", err)
	}
	if len(receipts) == 0 {
		fmt.Fprintln(out, "No orders yet")
		return nil
	}

	total, err := repo.Count()
	if err != nil {
		return fmt.Errorf("counting orders: %w", err)
	}

	for _, r := range receipts {
		fmt.Fprintf(out, "%s  %-12s %s (%s)  %s\n",
			r.ServedAt().Local().Format("2006-01-02 15:04"),
			styles.TruncateString(r.Client(), 12),
			r.Drink(),
			styles.FormatExtras(r.Sugar(), r.Blow()),
			styles.MutedStyle.Render(r.GUID()),
		)
	}
	fmt.Fprintln(out, styles.MutedStyle.Render(fmt.Sprintf("%d of %d orders", len(receipts), total)))
	return nil
}

// showReceipt prints one receipt in full. An unknown id prints a notice.
func showReceipt(out io.Writer, repo domain.Repository, guid string) error {
	r, err := repo.FindByGUID(guid)
	var notFound *domain.ReceiptNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(out, styles.WarningStyle.Render("No order with receipt "+notFound.GUID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("finding receipt: %w", err)
	}

	fmt.Fprintf(out, "Receipt  %s\n", r.GUID())
	fmt.Fprintf(out, "Served   %s\n", r.ServedAt().Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Client   %s\n", r.Client())
	fmt.Fprintf(out, "Drink    %d - %s (%s)\n", r.DrinkID(), r.Drink(), styles.FormatExtras(r.Sugar(), r.Blow()))
	return nil
}
