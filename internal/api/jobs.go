package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/jonathan/jobdesk/internal/types"
)

// JobFilter narrows a job listing.
type JobFilter struct {
	// Status selects one partition (published/draft/archived).
	Status types.JobStatus
	// Owner restricted to "me" lists only the caller's postings.
	Owner string
}

// ListJobs fetches job postings, optionally filtered by status and owner.
func (c *Client) ListJobs(ctx context.Context, filter JobFilter) ([]types.Job, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Owner != "" {
		query.Set("owner", filter.Owner)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/jobs", query, nil, nil)
	if err != nil {
		return nil, err
	}

	var jobs []types.Job
	if err := decode(resp, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches one job by id.
func (c *Client) GetJob(ctx context.Context, id int) (*types.Job, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var job types.Job
	if err := decode(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob submits a new job posting. The payload is the normalized wire
// form produced by the payload builder. An idempotency key protects the
// create against transport retries.
func (c *Client) CreateJob(ctx context.Context, payload map[string]interface{}) (*types.Job, error) {
	opts := &requestOptions{header: http.Header{}}
	opts.header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.doRequest(ctx, http.MethodPost, "/jobs", nil, payload, opts)
	if err != nil {
		return nil, err
	}

	var job types.Job
	if err := decode(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob partially updates a job posting.
func (c *Client) UpdateJob(ctx context.Context, id int, payload map[string]interface{}) (*types.Job, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/jobs/%d", id), nil, payload, nil)
	if err != nil {
		return nil, err
	}

	var job types.Job
	if err := decode(resp, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a job posting.
func (c *Client) DeleteJob(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, nil, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// SetJobStatus moves a job posting to the given partition.
func (c *Client) SetJobStatus(ctx context.Context, id int, status types.JobStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid job status %q", status)
	}

	body := map[string]string{"status": string(status)}
	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/jobs/%d/status", id), nil, body, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
