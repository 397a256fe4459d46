package model

type TransactionStatus string

const (
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// TransactionRecord is immutable once returned by the backend; the client
// only displays and paginates it.
type TransactionRecord struct {
	ID                int64             `json:"id"`
	SourceAccount     string            `json:"sourceAccount"`
	TargetAccount     string            `json:"targetAccount"`
	TransactionType   string            `json:"transactionType"`
	Amount            float64           `json:"amount"`
	Currency          string            `json:"currency"`
	TransactionStatus TransactionStatus `json:"transactionStatus"`
	Description       string            `json:"description"`
	ReferenceCode     string            `json:"referenceCode"`
	CreatedAt         string            `json:"createdAt"`
}
