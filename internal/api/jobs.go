package api

import "fmt"

// Jobs lists open job postings.
func (c *Client) Jobs() ([]Job, error) {
	var out []Job
	resp, err := c.rest.R().SetResult(&out).Get("/api/jobs")
	if err != nil {
		return nil, fmt.Errorf("jobs list: %w", err)
	}
	if err := statusErr("jobs list", resp); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateJob publishes a posting.
func (c *Client) CreateJob(in Job) (*Job, error) {
	var out Job
	resp, err := c.rest.R().SetBody(in).SetResult(&out).Post("/api/jobs")
	if err != nil {
		return nil, fmt.Errorf("job create: %w", err)
	}
	if err := statusErr("job create", resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyToJob registers the applicant for a posting.
func (c *Client) ApplyToJob(jobID, applicantID int64) error {
	resp, err := c.rest.R().
		Post(fmt.Sprintf("/api/jobs/%d/apply/%d", jobID, applicantID))
	if err != nil {
		return fmt.Errorf("job apply: %w", err)
	}
	return statusErr("job apply", resp)
}
