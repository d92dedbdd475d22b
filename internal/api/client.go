// Package api provides the authenticated HTTP client for the job-board
// backend. Every request carries the current bearer token when one exists;
// authentication failures are intercepted centrally and end the session via
// the expiry guard, so call sites never see a 401/403 as an ordinary error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/jonathan/jobdesk/internal/config"
	"github.com/jonathan/jobdesk/internal/session"
)

// retryLogger adapts zerolog to the retryablehttp.LeveledLogger interface.
type retryLogger struct {
	log zerolog.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{})  {}
func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {}

// Client is the API client for the job-board backend.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	guard      *session.Guard
	log        zerolog.Logger
}

// NewClient creates an API client bound to the given session guard.
func NewClient(cfg *config.Config, guard *session.Guard, log zerolog.Logger) (*Client, error) {
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api base URL is empty")
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.Logger = &retryLogger{log: log}

	return &Client{
		httpClient: retryClient.StandardClient(),
		baseURL:    strings.TrimSuffix(cfg.APIBaseURL, "/"),
		guard:      guard,
		log:        log,
	}, nil
}

// requestOptions tweak per-call behavior of doRequest.
type requestOptions struct {
	// keepAuthStatuses lists response statuses that must NOT trigger the
	// session-end interception for this call. Used by the analytics
	// fallback, which handles 403/404 itself.
	keepAuthStatuses []int

	// header carries extra request headers.
	header nethttp.Header
}

func (o *requestOptions) keeps(status int) bool {
	for _, s := range o.keepAuthStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// doRequest performs an HTTP request with bearer authentication and central
// auth-failure interception. The returned response must be closed by the
// caller; when the error is session.ErrEnded the session has already been
// torn down and the caller must abort silently.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}, opts *requestOptions) (*nethttp.Response, error) {
	if opts == nil {
		opts = &requestOptions{}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range opts.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	// Anonymous requests simply omit the header.
	token := c.guard.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A transport failure with no response while no token is held
		// means the caller never had a session to begin with.
		if token == "" {
			c.guard.End(session.ReasonMissing, path)
			return nil, &session.EndedError{Reason: session.ReasonMissing}
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if reason, ok := authFailure(resp.StatusCode); ok && !opts.keeps(resp.StatusCode) {
		resp.Body.Close()
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("session ended by response status")
		c.guard.End(reason, path)
		return nil, &session.EndedError{Reason: reason}
	}

	return resp, nil
}

// authFailure maps a response status to a session end reason.
// 401, 419 and 440 are expiry variants; 403 is a forbidden session.
func authFailure(status int) (session.EndReason, bool) {
	switch status {
	case nethttp.StatusUnauthorized, 419, 440:
		return session.ReasonExpired, true
	case nethttp.StatusForbidden:
		return session.ReasonForbidden, true
	}
	return "", false
}

// decode reads a JSON response body into out, converting non-2xx responses
// into *Error with the server's detail message.
func decode(resp *nethttp.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &Error{Status: resp.StatusCode, Message: extractDetail(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
