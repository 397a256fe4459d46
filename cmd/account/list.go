package account

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your accounts and balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()

			accounts, err := a.Gateway.AccountsByUser(cmd.Context(), identity.ID)
			if err != nil {
				return err
			}

			return views.NewAccountListView().Render(accounts)
		},
	}
}
