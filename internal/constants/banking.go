package constants

const (
	// Date layout used by history filters (matches the backend's LocalDate)
	DateFormat = "2006-01-02"

	DefaultPageSize = 10
	MaxPageSize     = 100
)

const (
	AccountTypeSavings  = "AHORROS"
	AccountTypeChecking = "CORRIENTE"
)

// Currencies the backend accepts today. The field itself is an open string;
// this list only feeds the selection prompt.
var SupportedCurrencies = []string{"USD", "PEN", "MXN"}
