package prompts

import (
	"github.com/renzovm/bancli/internal/constants"
)

// PromptAccountType selects between the two backend account types
func PromptAccountType() (string, error) {
	options := []string{
		constants.AccountTypeSavings + " - Savings",
		constants.AccountTypeChecking + " - Checking",
	}

	selected, err := PromptSelect("Account type:", options, options[0])
	if err != nil {
		return "", err
	}

	// Extract the backend code
	if selected == options[1] {
		return constants.AccountTypeChecking, nil
	}
	return constants.AccountTypeSavings, nil
}
