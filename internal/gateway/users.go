package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/renzovm/bancli/internal/model"
)

type UserUpdateRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type ChangePasswordRequest struct {
	CurrentPassword      string `json:"currentPassword"`
	NewPassword          string `json:"newPassword"`
	ConfirmationPassword string `json:"confirmationPassword"`
}

func (c *Client) UserProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	var profile model.UserProfile
	path := fmt.Sprintf("/users/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID int64, req UserUpdateRequest) (*model.UserProfile, error) {
	var profile model.UserProfile
	path := fmt.Sprintf("/users/%d", userID)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	path := fmt.Sprintf("/users/%d/password", userID)
	return c.do(ctx, http.MethodPatch, path, nil, req, nil)
}
