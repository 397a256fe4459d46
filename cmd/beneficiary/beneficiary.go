package beneficiary

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/guard"
	"github.com/spf13/cobra"
)

func NewBeneficiaryCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "beneficiary",
		Aliases: []string{"ben"},
		Short:   "Manage your saved beneficiaries",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Guard.Require(guard.ViewBeneficiaries)
		},
	}

	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewAddCmd(a))
	cmd.AddCommand(NewEditCmd(a))
	cmd.AddCommand(NewRemoveCmd(a))

	return cmd
}
