package api

import "context"

// ReportSummary fetches the backend-computed company report.
func (c *Client) ReportSummary(ctx context.Context) (*CompanyReport, error) {
	var report CompanyReport
	if err := c.Get(ctx, "/reports/summary", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// MyCompany fetches the caller's company record.
func (c *Client) MyCompany(ctx context.Context) (*CompanyDetails, error) {
	var company CompanyDetails
	if err := c.Get(ctx, "/companies/me", &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// UpdateMyCompany patches the caller's company record.
func (c *Client) UpdateMyCompany(ctx context.Context, update CompanyUpdate) (*CompanyDetails, error) {
	var company CompanyDetails
	if err := c.Patch(ctx, "/companies/me", update, &company); err != nil {
		return nil, err
	}
	return &company, nil
}
