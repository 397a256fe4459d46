package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/renzovm/bancli/internal/model"
)

// AdminUserFilters narrows the admin user listing. Active and Blocked are
// tri-state: nil means "don't filter".
type AdminUserFilters struct {
	Active  *bool
	Blocked *bool
	Page    int
	Size    int
}

type AdminTransactionFilters struct {
	AccountNumber string
	Status        string
	FromDate      string
	ToDate        string
	Page          int
	Size          int
}

func (c *Client) AdminDashboard(ctx context.Context) (*model.AdminDashboard, error) {
	var dashboard model.AdminDashboard
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *Client) AdminUsers(ctx context.Context, filters AdminUserFilters) (*Page[model.AdminUser], error) {
	query := url.Values{}
	if filters.Active != nil {
		query.Set("isActive", strconv.FormatBool(*filters.Active))
	}
	if filters.Blocked != nil {
		query.Set("isBlocked", strconv.FormatBool(*filters.Blocked))
	}
	query.Set("page", strconv.Itoa(filters.Page))
	size := filters.Size
	if size <= 0 {
		size = 10
	}
	query.Set("size", strconv.Itoa(size))

	var page Page[model.AdminUser]
	if err := c.do(ctx, http.MethodGet, "/admin/users", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UnblockUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/admin/users/%d/unblock", userID)
	return c.do(ctx, http.MethodPatch, path, nil, nil, nil)
}

func (c *Client) AdminTransactions(ctx context.Context, filters AdminTransactionFilters) (*Page[model.TransactionRecord], error) {
	query := url.Values{}
	if filters.AccountNumber != "" {
		query.Set("accountNumber", filters.AccountNumber)
	}
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
	if err := c.do(ctx, http.MethodGet, "/admin/transactions", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
