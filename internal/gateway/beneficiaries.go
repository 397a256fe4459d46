package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/renzovm/bancli/internal/model"
)

type BeneficiaryRequest struct {
	Alias         string `json:"alias"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
}

func (c *Client) Beneficiaries(ctx context.Context, userID int64) ([]model.Beneficiary, error) {
	var beneficiaries []model.Beneficiary
	path := fmt.Sprintf("/beneficiaries/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &beneficiaries); err != nil {
		return nil, err
	}
	return beneficiaries, nil
}

func (c *Client) AddBeneficiary(ctx context.Context, userID int64, req BeneficiaryRequest) (*model.Beneficiary, error) {
	var beneficiary model.Beneficiary
	path := fmt.Sprintf("/beneficiaries/user/%d", userID)
	if err := c.do(ctx, http.MethodPost, path, nil, req, &beneficiary); err != nil {
		return nil, err
	}
	return &beneficiary, nil
}

func (c *Client) UpdateBeneficiary(ctx context.Context, userID, beneficiaryID int64, req BeneficiaryRequest) (*model.Beneficiary, error) {
	var beneficiary model.Beneficiary
	path := fmt.Sprintf("/beneficiaries/user/%d/%d", userID, beneficiaryID)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &beneficiary); err != nil {
		return nil, err
	}
	return &beneficiary, nil
}

func (c *Client) DeleteBeneficiary(ctx context.Context, userID, beneficiaryID int64) error {
	path := fmt.Sprintf("/beneficiaries/user/%d/%d", userID, beneficiaryID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
