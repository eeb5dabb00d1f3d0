package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	applicantapimodels "smartjob-backend/models/api/applicant"
)

const (
	applicantsPath      = "/applicants"
	applicantPath       = "/applicants/%v"
	applicantStatusPath = "/applicants/%v/status"
)

func (c *Client) ListApplicants(ctx context.Context, filter applicantapimodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.JobID != "" {
		query.Set("job_id", filter.JobID)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Limit == 0 {
		return listAll[applicantapimodels.ApplicantView](ctx, c, applicantsPath, query)
	}
	// an explicit limit asks for a single page
	query.Set("limit", strconv.Itoa(filter.Limit))
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	list := []applicantapimodels.ApplicantView{}
	if err := c.Do(ctx, http.MethodGet, applicantsPath+"?"+query.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateApplicant(ctx context.Context, data applicantapimodels.ApplicantData, resume *File) (applicantapimodels.ApplicantView, error) {
	fields := map[string]string{
		"name":      data.Name,
		"email":     data.Email,
		"contact":   data.Contact,
		"job_id":    data.JobID,
		"job_title": data.JobTitle,
	}
	if data.Resume != "" && resume == nil {
		fields["resume"] = data.Resume
	}
	applicant := applicantapimodels.ApplicantView{}
	err := c.DoMultipart(ctx, http.MethodPost, applicantsPath, fields, attachment("resume", resume), &applicant)
	return applicant, err
}

func (c *Client) UpdateApplicantStatus(ctx context.Context, id string, request applicantapimodels.StatusUpdate) (applicantapimodels.ApplicantView, error) {
	applicant := applicantapimodels.ApplicantView{}
	err := c.Do(ctx, http.MethodPut, fmt.Sprintf(applicantStatusPath, id), request, &applicant)
	return applicant, err
}

func (c *Client) DeleteApplicant(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf(applicantPath, id), nil, nil)
}
