package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/renzovm/bancli/internal/model"
	"github.com/renzovm/bancli/internal/txform"
	"github.com/renzovm/bancli/internal/validation"
)

var kindLabels = map[string]txform.Kind{
	"Transfer":        txform.KindTransfer,
	"Service Payment": txform.KindPayment,
	"Deposit":         txform.KindDeposit,
	"Withdrawal":      txform.KindWithdraw,
}

// PromptTransactionKind prompts for one of the four operation kinds
func PromptTransactionKind() (txform.Kind, error) {
	options := []string{"Transfer", "Service Payment", "Deposit", "Withdrawal"}

	selected, err := PromptSelect("Choose the operation type:", options, "Transfer")
	if err != nil {
		return "", err
	}

	return kindLabels[selected], nil
}

// PromptOwnAccount selects one of the identity's accounts by number, showing
// type, currency and current balance the way the web form does.
func PromptOwnAccount(accounts []model.Account, message string) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("you have no accounts yet, create one with 'bancli account create'")
	}

	var opts []huh.Option[string]
	accountMap := make(map[string]string) // display -> account number

	for _, acc := range accounts {
		display := fmt.Sprintf("%s - %s - %s (%.2f)", acc.AccountType, acc.AccountNumber, acc.Currency, acc.CurrentBalance)
		opts = append(opts, huh.NewOption(display, display))
		accountMap[display] = acc.AccountNumber
	}

	var selectedDisplay string

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selectedDisplay).
		Height(10).
		Run()

	if err != nil {
		return "", err
	}

	return accountMap[selectedDisplay], nil
}

// PromptTargetAccount lets the user type a target account number or pick one
// from their beneficiaries (and optionally their own accounts, for deposits).
func PromptTargetAccount(beneficiaries []model.Beneficiary, ownAccounts []model.Account) (string, error) {
	const (
		optManual        = "Enter an account number"
		optBeneficiaries = "Pick a beneficiary"
		optOwnAccounts   = "Pick one of my accounts"
	)

	options := []string{optManual}
	if len(beneficiaries) > 0 {
		options = append(options, optBeneficiaries)
	}
	if len(ownAccounts) > 0 {
		options = append(options, optOwnAccounts)
	}

	choice := optManual
	if len(options) > 1 {
		var err error
		choice, err = PromptSelect("Target account:", options, optManual)
		if err != nil {
			return "", err
		}
	}

	switch choice {
	case optBeneficiaries:
		beneficiary, err := PromptBeneficiary(beneficiaries)
		if err != nil {
			return "", err
		}
		return beneficiary.AccountNumber, nil
	case optOwnAccounts:
		return PromptOwnAccount(ownAccounts, "Which of your accounts receives the money?")
	default:
		return PromptInput("Target account number:", "", validation.ValidateAccountNumber)
	}
}

// PromptBeneficiary selects a saved beneficiary
func PromptBeneficiary(beneficiaries []model.Beneficiary) (model.Beneficiary, error) {
	var opts []huh.Option[string]
	byDisplay := make(map[string]model.Beneficiary)

	for _, b := range beneficiaries {
		bank := b.BankName
		if bank == "" {
			bank = "Other bank"
		}
		display := fmt.Sprintf("%s - %s (%s)", b.Alias, b.AccountNumber, bank)
		opts = append(opts, huh.NewOption(display, display))
		byDisplay[display] = b
	}

	var selectedDisplay string

	err := huh.NewSelect[string]().
		Title("Beneficiary:").
		Options(opts...).
		Value(&selectedDisplay).
		Height(10).
		Run()

	if err != nil {
		return model.Beneficiary{}, err
	}

	return byDisplay[selectedDisplay], nil
}

// PromptServiceDetails collects the payment service fields
func PromptServiceDetails() (serviceName, supplyCode string, err error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Service:").
				Description("e.g. Luz del Sur, Sedapal").
				Validate(validation.ValidateRequired("service name")).
				Value(&serviceName),
			huh.NewInput().
				Title("Supply code:").
				Description("e.g. 1234567").
				Validate(validation.ValidateRequired("supply code")).
				Value(&supplyCode),
		),
	)

	err = form.Run()
	return serviceName, supplyCode, err
}

// PromptAmount prompts for a positive decimal amount
func PromptAmount(defaultCurrency string) (string, error) {
	return PromptInput(
		fmt.Sprintf("Amount (%s):", defaultCurrency),
		"",
		validation.ValidateAmount,
	)
}

// PromptCurrency selects the transaction currency from the supported list
func PromptCurrency(supported []string, defaultCurrency string) (string, error) {
	return PromptSelect("Currency:", supported, defaultCurrency)
}

// PromptStatusFilter selects an optional transaction status filter
func PromptStatusFilter() (string, error) {
	const optAll = "All"
	options := []string{optAll, string(model.StatusSuccess), string(model.StatusPending), string(model.StatusFailed)}

	selected, err := PromptSelect("Status filter:", options, optAll)
	if err != nil {
		return "", err
	}
	if selected == optAll {
		return "", nil
	}
	return selected, nil
}
