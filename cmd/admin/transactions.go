package admin

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/spf13/cobra"
)

type transactionsFlags struct {
	Account  string
	Status   string
	FromDate string
	ToDate   string
	Page     int
	Size     int
}

func NewTransactionsCmd(a *app.App, cfg *config.Config) *cobra.Command {
	flags := &transactionsFlags{}

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Browse transactions across all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := flags.Size
			if size <= 0 {
				size = cfg.Defaults.PageSize
			}

			page, err := a.Gateway.AdminTransactions(cmd.Context(), gateway.AdminTransactionFilters{
				AccountNumber: flags.Account,
				Status:        flags.Status,
				FromDate:      flags.FromDate,
				ToDate:        flags.ToDate,
				Page:          flags.Page,
				Size:          size,
			})
			if err != nil {
				return err
			}

			return views.NewTransactionListView().Render("All Transactions", page)
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Filter by account number")
	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Filter by status: PENDING, SUCCESS or FAILED")
	cmd.Flags().StringVar(&flags.FromDate, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.ToDate, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 0, "Page number (zero-based)")
	cmd.Flags().IntVar(&flags.Size, "size", 0, "Page size")

	return cmd
}
