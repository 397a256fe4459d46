package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/renzovm/bancli/internal/model"
)

type TransferRequest struct {
	SourceAccount string  `json:"sourceAccount"`
	TargetAccount string  `json:"targetAccount"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
}

type DepositRequest struct {
	TargetAccount string  `json:"targetAccount"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
}

type WithdrawRequest struct {
	SourceAccount string  `json:"sourceAccount"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
}

type PayServiceRequest struct {
	SourceAccount string  `json:"sourceAccount"`
	ServiceName   string  `json:"serviceName"`
	SupplyCode    string  `json:"supplyCode"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
}

// HistoryFilters narrows the transaction history query. Zero values mean
// "no filter"; Size falls back server-side when 0.
type HistoryFilters struct {
	Status   string
	FromDate string
	ToDate   string
	Page     int
	Size     int
}

func (c *Client) Transfer(ctx context.Context, userID int64, req TransferRequest) error {
	path := fmt.Sprintf("/transactions/user/%d/transfer", userID)
	return c.do(ctx, http.MethodPost, path, nil, req, nil)
}

// Deposit has no user scope in its URL; the backend resolves the target
// account on its own.
func (c *Client) Deposit(ctx context.Context, req DepositRequest) error {
	return c.do(ctx, http.MethodPost, "/transactions/deposit", nil, req, nil)
}

func (c *Client) Withdraw(ctx context.Context, userID int64, req WithdrawRequest) error {
	path := fmt.Sprintf("/transactions/user/%d/withdraw", userID)
	return c.do(ctx, http.MethodPost, path, nil, req, nil)
}

func (c *Client) PayService(ctx context.Context, userID int64, req PayServiceRequest) error {
	path := fmt.Sprintf("/transactions/user/%d/payment", userID)
	return c.do(ctx, http.MethodPost, path, nil, req, nil)
}

func (c *Client) TransactionHistory(ctx context.Context, accountNumber string, userID int64, filters HistoryFilters) (*Page[model.TransactionRecord], error) {
	query := url.Values{}
	query.Set("userId", strconv.FormatInt(userID, 10))
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.FromDate != "" {
		query.Set("fromDate", filters.FromDate)
	}
	if filters.ToDate != "" {
		query.Set("toDate", filters.ToDate)
	}
	query.Set("page", strconv.Itoa(filters.Page))
	size := filters.Size
	if size <= 0 {
		size = 10
	}
	query.Set("size", strconv.Itoa(size))

	var page Page[model.TransactionRecord]
	path := fmt.Sprintf("/transactions/history/account/%s", url.PathEscape(accountNumber))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
