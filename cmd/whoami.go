package cmd

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderSessionInfo(a.Session.Current())
		},
	}
}
