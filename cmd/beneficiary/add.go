package beneficiary

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Alias   string
	Account string
	Bank    string
}

func NewAddCmd(a *app.App) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new beneficiary",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()

			req := gateway.BeneficiaryRequest{
				Alias:         flags.Alias,
				AccountNumber: flags.Account,
				BankName:      flags.Bank,
			}

			if req.Alias == "" || req.AccountNumber == "" {
				var err error
				req, err = prompts.PromptBeneficiaryFields(req)
				if err != nil {
					return err
				}
			}

			beneficiary, err := a.Gateway.AddBeneficiary(cmd.Context(), identity.ID, req)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Beneficiary '%s' saved (ID: %d)\n", beneficiary.Alias, beneficiary.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Alias, "alias", "", "Beneficiary alias")
	cmd.Flags().StringVar(&flags.Account, "account", "", "Beneficiary account number")
	cmd.Flags().StringVar(&flags.Bank, "bank", "", "Beneficiary bank name")

	return cmd
}
