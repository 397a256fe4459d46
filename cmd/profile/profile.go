package profile

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/guard"
	"github.com/spf13/cobra"
)

func NewProfileCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your user profile",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Guard.Require(guard.ViewProfile)
		},
	}

	cmd.AddCommand(NewShowCmd(a))
	cmd.AddCommand(NewUpdateCmd(a))
	cmd.AddCommand(NewPasswordCmd(a))

	return cmd
}
