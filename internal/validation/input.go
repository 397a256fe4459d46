package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateAmount ensures the input parses to a positive decimal. Used as a
// prompt-level validator; the form controller re-checks before dispatch.
func ValidateAmount(val string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid number format (e.g. 150 or 150.50)")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

func ValidateRequired(field string) func(string) error {
	return func(val string) error {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func ValidateCurrency(val string) error {
	currency := strings.TrimSpace(strings.ToUpper(val))

	if currency == "" {
		return nil // empty falls back to the default
	}

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}

func ValidateEmail(val string) error {
	email := strings.TrimSpace(val)
	if email == "" {
		return fmt.Errorf("email is required")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("enter a valid email address")
	}

	return nil
}

// ValidateAccountNumber accepts the backend's opaque account format but
// rejects obviously broken input.
func ValidateAccountNumber(val string) error {
	number := strings.TrimSpace(val)
	if number == "" {
		return fmt.Errorf("account number is required")
	}
	if len(number) < 4 {
		return fmt.Errorf("account number looks too short")
	}
	return nil
}
