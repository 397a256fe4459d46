package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("150"))
	assert.NoError(t, ValidateAmount("150.50"))
	assert.NoError(t, ValidateAmount(" 0.01 "))

	assert.Error(t, ValidateAmount(""))
	assert.Error(t, ValidateAmount("abc"))
	assert.Error(t, ValidateAmount("1.2.3"))
	assert.Error(t, ValidateAmount("0"))
	assert.Error(t, ValidateAmount("-10"))
}

func TestValidateRequired(t *testing.T) {
	check := ValidateRequired("description")

	assert.NoError(t, check("rent"))
	assert.EqualError(t, check(""), "description is required")
	assert.Error(t, check("   "))
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("USD"))
	assert.NoError(t, ValidateCurrency("pen"))
	assert.NoError(t, ValidateCurrency(""), "empty means use the configured default")

	assert.Error(t, ValidateCurrency("US"))
	assert.Error(t, ValidateCurrency("DOLLAR"))
	assert.Error(t, ValidateCurrency("U5D"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ana@bank.pe"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("ana"))
	assert.Error(t, ValidateEmail("@bank.pe"))
	assert.Error(t, ValidateEmail("ana@"))
	assert.Error(t, ValidateEmail("ana@bank"))
}

func TestValidateAccountNumber(t *testing.T) {
	assert.NoError(t, ValidateAccountNumber("1234567890"))

	assert.Error(t, ValidateAccountNumber(""))
	assert.Error(t, ValidateAccountNumber("123"))
}
