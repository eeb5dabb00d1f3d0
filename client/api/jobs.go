package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	jobapimodels "smartjob-backend/models/api/job"
)

const (
	jobsListPath   = "/jobs/all"
	jobsCreatePath = "/jobs/create"
	jobPath        = "/jobs/%v"
)

// ListJobs returns every job visible to the caller, page by page.
func (c *Client) ListJobs(ctx context.Context) ([]jobapimodels.JobView, error) {
	return listAll[jobapimodels.JobView](ctx, c, jobsListPath, url.Values{})
}

func (c *Client) CreateJob(ctx context.Context, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	job := jobapimodels.JobView{}
	err := c.Do(ctx, http.MethodPost, jobsCreatePath, data, &job)
	return job, err
}

func (c *Client) GetJob(ctx context.Context, id string) (jobapimodels.JobView, error) {
	job := jobapimodels.JobView{}
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf(jobPath, id), nil, &job)
	return job, err
}

func (c *Client) UpdateJob(ctx context.Context, id string, patch jobapimodels.JobPatch) (jobapimodels.JobView, error) {
	job := jobapimodels.JobView{}
	err := c.Do(ctx, http.MethodPut, fmt.Sprintf(jobPath, id), patch, &job)
	return job, err
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf(jobPath, id), nil, nil)
}
