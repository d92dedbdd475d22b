package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/jobdesk/internal/types"
)

// ListCVs returns every CV the caller has uploaded.
func (c *Client) ListCVs(ctx context.Context) ([]types.CV, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/cvs", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var cvs []types.CV
	if err := decode(resp, &cvs); err != nil {
		return nil, err
	}
	return cvs, nil
}

// UploadCV uploads a CV document and returns the stored record.
func (c *Client) UploadCV(ctx context.Context, filename string, r io.Reader) (*types.CV, error) {
	var out types.CV
	if err := c.uploadFile(ctx, "/cvs", filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCurrentCV returns the caller's most recent CV, or nil when none has
// been uploaded yet.
func (c *Client) GetCurrentCV(ctx context.Context) (*types.CV, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/cvs/current", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}

	var cv types.CV
	if err := decode(resp, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// DownloadCV streams a stored CV document into w.
func (c *Client) DownloadCV(ctx context.Context, id int, w io.Writer) error {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/cvs/%d/download", id), nil, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &Error{Status: resp.StatusCode, Message: extractDetail(body)}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to write CV content: %w", err)
	}
	return nil
}
