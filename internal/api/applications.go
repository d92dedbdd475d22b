package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/jonathan/jobdesk/internal/types"
)

// ApplicationFilter narrows an application listing for one job.
type ApplicationFilter struct {
	Sort   types.ApplicationSort
	Status types.ApplicationStatus
}

// SubmitApplication submits a candidate application.
func (c *Client) SubmitApplication(ctx context.Context, req *types.ApplicationRequest) (*types.Application, error) {
	opts := &requestOptions{header: http.Header{}}
	opts.header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.doRequest(ctx, http.MethodPost, "/applications", nil, req, opts)
	if err != nil {
		return nil, err
	}

	var app types.Application
	if err := decode(resp, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListJobApplications fetches the applications for one job, sorted and
// filtered server-side.
func (c *Client) ListJobApplications(ctx context.Context, jobID int, filter ApplicationFilter) ([]types.Application, error) {
	query := url.Values{}
	if filter.Sort != "" {
		query.Set("sort", string(filter.Sort))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	path := fmt.Sprintf("/jobs/%d/applications", jobID)
	resp, err := c.doRequest(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return nil, err
	}

	var apps []types.Application
	if err := decode(resp, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SetApplicationStatus moves one application to accepted or rejected.
func (c *Client) SetApplicationStatus(ctx context.Context, id int, status types.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid application status %q", status)
	}

	body := map[string]string{"status": string(status)}
	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/applications/%d/status", id), nil, body, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
