package cmd

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/spf13/cobra"
)

func NewInfoCmd(a *app.App, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show client configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := pterm.Red("none")
			if a.Session.IsAuthenticated() {
				session = pterm.Green("active")
			}

			tableData := pterm.TableData{
				{"Configuration File", cfg.ConfigPath},
				{"API Base URL", cfg.API.BaseURL},
				{"Request Timeout", pterm.Sprintf("%ds", cfg.API.TimeoutSeconds)},
				{"Default Currency", cfg.Defaults.Currency},
				{"Cached Session", session},
			}

			return pterm.DefaultTable.WithData(tableData).Render()
		},
	}
}
