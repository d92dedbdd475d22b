package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/jobdesk/internal/types"
)

// GetMe fetches the authenticated user's profile and refreshes the cached
// identity blob used to render the navbar without a round trip.
func (c *Client) GetMe(ctx context.Context) (*types.User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/me", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var u types.User
	if err := decode(resp, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// PatchMe partially updates the user profile.
func (c *Client) PatchMe(ctx context.Context, patch *types.UserPatch) (*types.User, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/users/me", nil, patch, nil)
	if err != nil {
		return nil, err
	}

	var u types.User
	if err := decode(resp, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ChangePassword updates the account password after re-authenticating with
// the current one.
func (c *Client) ChangePassword(ctx context.Context, req *types.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid change-password request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/users/me/change-password", nil, req, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// ChangeEmail updates the account email after re-authenticating.
func (c *Client) ChangeEmail(ctx context.Context, req *types.ChangeEmailRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid change-email request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/users/me/change-email", nil, req, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// UploadAvatar uploads a profile picture.
func (c *Client) UploadAvatar(ctx context.Context, filename string, r io.Reader) (*types.AvatarResponse, error) {
	var out types.AvatarResponse
	if err := c.uploadFile(ctx, "/users/me/avatar", filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
