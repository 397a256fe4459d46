package account

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/constants"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Currency    string
	AccountType string
}

func NewCreateCmd(a *app.App, cfg *config.Config) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		Long: `Open a new savings or checking account.

Examples:
  # Interactive mode
  bancli account create

  # Quick mode with flags
  bancli account create --type AHORROS --currency PEN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()

			accountType := flags.AccountType
			currency := flags.Currency

			if accountType == "" {
				var err error
				accountType, err = prompts.PromptAccountType()
				if err != nil {
					return err
				}
			}

			if currency == "" {
				var err error
				currency, err = prompts.PromptCurrency(constants.SupportedCurrencies, cfg.Defaults.Currency)
				if err != nil {
					return err
				}
			}

			account, err := a.Gateway.CreateAccount(cmd.Context(), identity.ID, gateway.AccountCreationRequest{
				Currency:    currency,
				AccountType: accountType,
			})
			if err != nil {
				return err
			}

			pterm.Success.Printf("Account created: %s (%s %s)\n", account.AccountNumber, account.AccountType, account.Currency)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.AccountType, "type", "t", "", "Account type: AHORROS or CORRIENTE")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Account currency (e.g. USD, PEN)")

	return cmd
}
