package profile

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/renzovm/bancli/internal/validation"
	"github.com/spf13/cobra"
)

func NewUpdateCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update your contact details",
		Long: `Update your email address and phone number.

Changing the email invalidates the stored token, so the session is closed
and you must log in again with the new address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.Session.Current()
			ctx := cmd.Context()

			current, err := a.Gateway.UserProfile(ctx, identity.ID)
			if err != nil {
				return err
			}

			email, err := prompts.PromptInput("Email:", current.Email, validation.ValidateEmail)
			if err != nil {
				return err
			}

			phone, err := prompts.PromptInput("Phone number:", current.PhoneNumber, validation.ValidateRequired("phone number"))
			if err != nil {
				return err
			}

			updated, err := a.Gateway.UpdateUser(ctx, identity.ID, gateway.UserUpdateRequest{
				Email:       email,
				PhoneNumber: phone,
			})
			if err != nil {
				return err
			}

			pterm.Success.Println("Profile updated")

			// The token was issued for the old email; keeping the session
			// open would just fail on the next protected call.
			if updated.Email != current.Email {
				if err := a.Session.Logout(); err != nil {
					return err
				}
				pterm.Warning.Println("Your email changed, so the session was closed. Log in again with the new address.")
			}

			return nil
		},
	}
}
