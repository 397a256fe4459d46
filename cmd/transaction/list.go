package transaction

import (
	"fmt"
	"time"

	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/constants"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Account  string
	Status   string
	FromDate string
	ToDate   string
	Page     int
	Size     int
}

func NewListCmd(a *app.App, cfg *config.Config) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse the transaction history of one of your accounts",
		Long: `Browse the transaction history of one of your accounts.

Examples:
  # Pick the account interactively
  bancli transaction list

  # Filter a specific account
  bancli transaction list --account 100-200-300 --status SUCCESS \
      --from 2026-01-01 --to 2026-01-31 --page 0 --size 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()
			ctx := cmd.Context()

			accountNumber := flags.Account
			if accountNumber == "" {
				accounts, err := a.Gateway.AccountsByUser(ctx, identity.ID)
				if err != nil {
					return fmt.Errorf("failed to load accounts: %w", err)
				}

				accountNumber, err = prompts.PromptOwnAccount(accounts, "Which account's history?")
				if err != nil {
					return err
				}

				// No flags at all means a fully interactive session; offer
				// the filters too.
				if flags.Status == "" && flags.FromDate == "" && flags.ToDate == "" {
					if flags.Status, err = prompts.PromptStatusFilter(); err != nil {
						return err
					}
					if flags.FromDate, err = prompts.PromptDate("From date:", "Leave empty to skip"); err != nil {
						return err
					}
					if flags.ToDate, err = prompts.PromptDate("To date:", "Leave empty to skip"); err != nil {
						return err
					}
				}
			}

			if err := validateDate(flags.FromDate); err != nil {
				return err
			}
			if err := validateDate(flags.ToDate); err != nil {
				return err
			}

			size := flags.Size
			if size <= 0 {
				size = cfg.Defaults.PageSize
			}
			if size > constants.MaxPageSize {
				size = constants.MaxPageSize
			}

			page, err := a.Gateway.TransactionHistory(ctx, accountNumber, identity.ID, gateway.HistoryFilters{
				Status:   flags.Status,
				FromDate: flags.FromDate,
				ToDate:   flags.ToDate,
				Page:     flags.Page,
				Size:     size,
			})
			if err != nil {
				return err
			}

			title := fmt.Sprintf("History for %s", accountNumber)
			return views.NewTransactionListView().Render(title, page)
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account number (prompted when omitted)")
	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Filter by status: PENDING, SUCCESS or FAILED")
	cmd.Flags().StringVar(&flags.FromDate, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.ToDate, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 0, "Page number (zero-based)")
	cmd.Flags().IntVar(&flags.Size, "size", 0, "Page size")

	return cmd
}

func validateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		return fmt.Errorf("invalid date '%s', use YYYY-MM-DD", value)
	}
	return nil
}
