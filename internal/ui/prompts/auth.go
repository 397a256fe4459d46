package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/validation"
)

// PromptCredentials collects email and password for login.
func PromptCredentials() (email, password string, err error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email:").
				Validate(validation.ValidateEmail).
				Value(&email),
			huh.NewInput().
				Title("Password:").
				EchoMode(huh.EchoModePassword).
				Validate(validation.ValidateRequired("password")).
				Value(&password),
		),
	)

	err = form.Run()
	return email, password, err
}

// PromptRegistration walks through the registration fields in two pages:
// personal data first, then credentials.
func PromptRegistration() (gateway.RegisterRequest, error) {
	var req gateway.RegisterRequest

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First name:").
				Validate(validation.ValidateRequired("name")).
				Value(&req.Name),
			huh.NewInput().
				Title("First last name:").
				Validate(validation.ValidateRequired("last name")).
				Value(&req.LastName1),
			huh.NewInput().
				Title("Second last name (optional):").
				Value(&req.LastName2),
			huh.NewInput().
				Title("Document ID:").
				Validate(validation.ValidateRequired("document id")).
				Value(&req.DocumentID),
			huh.NewInput().
				Title("Phone number:").
				Validate(validation.ValidateRequired("phone number")).
				Value(&req.PhoneNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Email:").
				Validate(validation.ValidateEmail).
				Value(&req.Email),
			huh.NewInput().
				Title("Password:").
				EchoMode(huh.EchoModePassword).
				Validate(validation.ValidateRequired("password")).
				Value(&req.Password),
		),
	)

	err := form.Run()
	return req, err
}
