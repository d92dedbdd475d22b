package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"

	"github.com/jonathan/jobdesk/internal/session"
)

// uploadFile sends a multipart/form-data POST with the file under the form
// field "file", which is what the backend's upload endpoints expect.
func (c *Client) uploadFile(ctx context.Context, path, filename string, r io.Reader, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	token := c.guard.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if token == "" {
			c.guard.End(session.ReasonMissing, path)
			return &session.EndedError{Reason: session.ReasonMissing}
		}
		return fmt.Errorf("upload failed: %w", err)
	}

	if reason, ok := authFailure(resp.StatusCode); ok {
		resp.Body.Close()
		c.guard.End(reason, path)
		return &session.EndedError{Reason: reason}
	}

	return decode(resp, out)
}
