package beneficiary

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/spf13/cobra"
)

func NewEditCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Update a saved beneficiary",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()
			ctx := cmd.Context()

			beneficiaries, err := a.Gateway.Beneficiaries(ctx, identity.ID)
			if err != nil {
				return err
			}
			if len(beneficiaries) == 0 {
				pterm.Warning.Println("No beneficiaries to edit")
				return nil
			}

			selected, err := prompts.PromptBeneficiary(beneficiaries)
			if err != nil {
				return err
			}

			req, err := prompts.PromptBeneficiaryFields(gateway.BeneficiaryRequest{
				Alias:         selected.Alias,
				AccountNumber: selected.AccountNumber,
				BankName:      selected.BankName,
			})
			if err != nil {
				return err
			}

			updated, err := a.Gateway.UpdateBeneficiary(ctx, identity.ID, selected.ID, req)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Beneficiary '%s' updated\n", updated.Alias)
			return nil
		},
	}
}
