package account

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/guard"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage your bank accounts",
		// Guarded on every invocation: the verdict depends on the live
		// session and is never cached.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Guard.Require(guard.ViewAccounts)
		},
	}

	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewCreateCmd(a, cfg))

	return cmd
}
