package admin

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/guard"
	"github.com/spf13/cobra"
)

func NewAdminCmd(a *app.App, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Bank administration (ADMIN role only)",
		// Role-scoped: a CLIENT session is denied the same way an anonymous
		// one is, revealing nothing about what lives behind the gate.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Guard.Require(guard.ViewAdmin)
		},
	}

	cmd.AddCommand(NewDashboardCmd(a))
	cmd.AddCommand(NewUsersCmd(a, cfg))
	cmd.AddCommand(NewUnblockCmd(a))
	cmd.AddCommand(NewTransactionsCmd(a, cfg))

	return cmd
}
