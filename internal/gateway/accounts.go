package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/renzovm/bancli/internal/model"
)

type AccountCreationRequest struct {
	Currency    string `json:"currency"`
	AccountType string `json:"accountType"`
}

func (c *Client) AccountsByUser(ctx context.Context, userID int64) ([]model.Account, error) {
	var accounts []model.Account
	path := fmt.Sprintf("/accounts/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) CreateAccount(ctx context.Context, userID int64, req AccountCreationRequest) (*model.Account, error) {
	var account model.Account
	path := fmt.Sprintf("/accounts/user/%d", userID)
	if err := c.do(ctx, http.MethodPost, path, nil, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
