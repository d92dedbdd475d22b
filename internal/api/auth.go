package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/jobdesk/internal/types"
)

// Register creates a new account. The request is validated client-side
// before it reaches the network.
func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid register request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/register", nil, req, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// Login exchanges credentials for a bearer token and activates the session
// guard, which persists the token and arms the proactive expiry watcher.
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", nil, req, nil)
	if err != nil {
		return nil, err
	}

	var out types.LoginResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, &Error{Status: resp.StatusCode, Message: "login response carried no token"}
	}

	if err := c.guard.Activate(out.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	return &out, nil
}
