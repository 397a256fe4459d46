package profile

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/renzovm/bancli/internal/validation"
	"github.com/spf13/cobra"
)

func NewPasswordCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()

			current, err := prompts.PromptPassword("Current password:", validation.ValidateRequired("current password"))
			if err != nil {
				return err
			}

			newPassword, err := prompts.PromptPassword("New password:", validation.ValidateRequired("new password"))
			if err != nil {
				return err
			}

			confirmation, err := prompts.PromptPassword("Confirm new password:", validation.ValidateRequired("confirmation"))
			if err != nil {
				return err
			}

			if newPassword != confirmation {
				return fmt.Errorf("the new password and its confirmation do not match")
			}

			err = a.Gateway.ChangePassword(cmd.Context(), identity.ID, gateway.ChangePasswordRequest{
				CurrentPassword:      current,
				NewPassword:          newPassword,
				ConfirmationPassword: confirmation,
			})
			if err != nil {
				return err
			}

			pterm.Success.Println("Password changed")
			return nil
		},
	}
}
