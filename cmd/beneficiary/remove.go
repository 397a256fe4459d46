package beneficiary

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/spf13/cobra"
)

func NewRemoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete a saved beneficiary",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()
			ctx := cmd.Context()

			beneficiaries, err := a.Gateway.Beneficiaries(ctx, identity.ID)
			if err != nil {
				return err
			}
			if len(beneficiaries) == 0 {
				pterm.Warning.Println("No beneficiaries to remove")
				return nil
			}

			selected, err := prompts.PromptBeneficiary(beneficiaries)
			if err != nil {
				return err
			}

			confirmed, err := prompts.PromptConfirm(
				pterm.Sprintf("Delete '%s' (%s)?", selected.Alias, selected.AccountNumber), false)
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Nothing deleted")
				return nil
			}

			if err := a.Gateway.DeleteBeneficiary(ctx, identity.ID, selected.ID); err != nil {
				return err
			}

			pterm.Success.Printf("Beneficiary '%s' deleted\n", selected.Alias)
			return nil
		},
	}
}
