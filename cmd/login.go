package cmd

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/spf13/cobra"
)

type loginFlags struct {
	Email    string
	Password string
}

func NewLoginCmd(a *app.App) *cobra.Command {
	flags := &loginFlags{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your bank account",
		Long: `Log in with your email and password.

The session is cached locally so you stay logged in across invocations
until you run 'bancli logout'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := flags.Email
			password := flags.Password

			if email == "" || password == "" {
				var err error
				email, password, err = prompts.PromptCredentials()
				if err != nil {
					return err
				}
			}

			if err := a.Session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			identity := a.Session.Current()
			if identity.Name != "" {
				pterm.Success.Printf("Welcome back, %s!\n", identity.Name)
			} else {
				pterm.Success.Println("Logged in successfully")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&flags.Password, "password", "p", "", "Account password (prompted when omitted)")

	return cmd
}
