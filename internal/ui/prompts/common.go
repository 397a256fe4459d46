package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptPassword prompts for a masked secret
func PromptPassword(message string, validator func(string) error) (string, error) {
	var secret string

	input := huh.NewInput().
		Title(message).
		EchoMode(huh.EchoModePassword).
		Value(&secret)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return secret, err
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format, empty means "no value"
func PromptDate(message string, helpText string) (string, error) {
	var date string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			if len(s) != 10 || s[4] != '-' || s[7] != '-' {
				return fmt.Errorf("use YYYY-MM-DD format")
			}
			return nil
		}).
		Value(&date).
		Run()

	return strings.TrimSpace(date), err
}
