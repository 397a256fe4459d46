package model

type Account struct {
	ID             int64   `json:"id"`
	AccountNumber  string  `json:"accountNumber"`
	AccountType    string  `json:"accountType"`
	Currency       string  `json:"currency"`
	CurrentBalance float64 `json:"currentBalance"`
}

type Beneficiary struct {
	ID            int64  `json:"id"`
	Alias         string `json:"alias"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
}
