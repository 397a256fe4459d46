package profile

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()

			userProfile, err := a.Gateway.UserProfile(cmd.Context(), identity.ID)
			if err != nil {
				return err
			}

			return views.RenderProfile(userProfile)
		},
	}
}
