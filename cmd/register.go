package cmd

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/spf13/cobra"
)

func NewRegisterCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new bank user",
		Long: `Create a new bank user interactively.

Registration does not log you in; run 'bancli login' afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := prompts.PromptRegistration()
			if err != nil {
				return err
			}

			if err := a.Session.Register(cmd.Context(), req); err != nil {
				return err
			}

			pterm.Success.Println("Registration complete. Run 'bancli login' to get started.")
			return nil
		},
	}
}
