package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/validation"
)

// PromptBeneficiaryFields collects the beneficiary form, pre-filled with the
// current values when editing.
func PromptBeneficiaryFields(current gateway.BeneficiaryRequest) (gateway.BeneficiaryRequest, error) {
	req := current

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Alias:").
				Validate(validation.ValidateRequired("alias")).
				Value(&req.Alias),
			huh.NewInput().
				Title("Account number:").
				Validate(validation.ValidateAccountNumber).
				Value(&req.AccountNumber),
			huh.NewInput().
				Title("Bank name:").
				Value(&req.BankName),
		),
	)

	err := form.Run()
	return req, err
}
