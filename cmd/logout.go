package cmd

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/spf13/cobra"
)

func NewLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.Session.IsAuthenticated() {
				pterm.Info.Println("No active session")
				return nil
			}

			if err := a.Session.Logout(); err != nil {
				return err
			}

			pterm.Success.Println("Session closed")
			return nil
		},
	}
}
