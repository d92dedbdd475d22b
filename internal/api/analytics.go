package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobdesk/internal/types"
)

// GetAnalyticsSummary fetches the company analytics dashboard. When the
// company endpoint answers 403 or 404 (admin accounts have no company
// scope), it falls back to the admin endpoint. Both calls opt out of the
// central 403 interception so the fallback can run.
func (c *Client) GetAnalyticsSummary(ctx context.Context) (*types.AnalyticsSummary, error) {
	opts := &requestOptions{keepAuthStatuses: []int{http.StatusForbidden, http.StatusNotFound}}

	resp, err := c.doRequest(ctx, http.MethodGet, "/company/analytics/summary", nil, nil, opts)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		resp, err = c.doRequest(ctx, http.MethodGet, "/admin/analytics/summary", nil, nil, opts)
		if err != nil {
			return nil, err
		}
	}

	var summary types.AnalyticsSummary
	if err := decode(resp, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
