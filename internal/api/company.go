package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/jobdesk/internal/types"
)

// GetCompanyMe fetches the authenticated account's company profile.
func (c *Client) GetCompanyMe(ctx context.Context) (*types.Company, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/company/me", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var company types.Company
	if err := decode(resp, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// PatchCompanyMe partially updates the company profile.
func (c *Client) PatchCompanyMe(ctx context.Context, patch *types.CompanyPatch) (*types.Company, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/company/me", nil, patch, nil)
	if err != nil {
		return nil, err
	}

	var company types.Company
	if err := decode(resp, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// UploadLogo uploads the company logo.
func (c *Client) UploadLogo(ctx context.Context, filename string, r io.Reader) (*types.LogoResponse, error) {
	var out types.LogoResponse
	if err := c.uploadFile(ctx, "/company/logo", filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCompanyByUser looks up the public company profile owned by a user.
// A missing company resolves to nil rather than an error so listing pages
// never fail over a secondary lookup.
func (c *Client) GetCompanyByUser(ctx context.Context, userID int) (*types.PublicCompany, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/company/by-user/%d", userID), nil, nil, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}

	var company types.PublicCompany
	if err := decode(resp, &company); err != nil {
		return nil, err
	}
	return &company, nil
}
