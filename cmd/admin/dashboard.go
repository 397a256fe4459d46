package admin

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewDashboardCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the bank-wide dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard, err := a.Gateway.AdminDashboard(cmd.Context())
			if err != nil {
				return err
			}

			return views.NewDashboardView().Render(dashboard)
		},
	}
}
