package resource

import (
	"context"

	"smartjob-backend/client/api"
	applicantapimodels "smartjob-backend/models/api/applicant"
	jobapimodels "smartjob-backend/models/api/job"
)

type JobStore = Store[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch]

type ApplicantStore = Store[applicantapimodels.ApplicantView, applicantapimodels.ApplicantData, applicantapimodels.StatusUpdate]

type jobsAPI struct {
	client *api.Client
}

// NewJobsAPI is the jobs backend served by the REST API.
func NewJobsAPI(client *api.Client) Backend[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch] {
	return &jobsAPI{client: client}
}

func (b *jobsAPI) List(ctx context.Context) ([]jobapimodels.JobView, error) {
	return b.client.ListJobs(ctx)
}

func (b *jobsAPI) Create(ctx context.Context, in jobapimodels.JobData) (jobapimodels.JobView, error) {
	return b.client.CreateJob(ctx, in)
}

func (b *jobsAPI) Update(ctx context.Context, id string, patch jobapimodels.JobPatch) (jobapimodels.JobView, error) {
	return b.client.UpdateJob(ctx, id, patch)
}

func (b *jobsAPI) Delete(ctx context.Context, id string) error {
	return b.client.DeleteJob(ctx, id)
}

type applicantsAPI struct {
	client *api.Client
	filter applicantapimodels.ApplicantFilter
}

// NewApplicantsAPI is the applicants backend listing the rows that match filter,
// e.g. status Reviewed for the accepted applicants page.
func NewApplicantsAPI(client *api.Client, filter applicantapimodels.ApplicantFilter) Backend[applicantapimodels.ApplicantView, applicantapimodels.ApplicantData, applicantapimodels.StatusUpdate] {
	return &applicantsAPI{client: client, filter: filter}
}

func (b *applicantsAPI) List(ctx context.Context) ([]applicantapimodels.ApplicantView, error) {
	return b.client.ListApplicants(ctx, b.filter)
}

func (b *applicantsAPI) Create(ctx context.Context, in applicantapimodels.ApplicantData) (applicantapimodels.ApplicantView, error) {
	return b.client.CreateApplicant(ctx, in, nil)
}

func (b *applicantsAPI) Update(ctx context.Context, id string, patch applicantapimodels.StatusUpdate) (applicantapimodels.ApplicantView, error) {
	return b.client.UpdateApplicantStatus(ctx, id, patch)
}

func (b *applicantsAPI) Delete(ctx context.Context, id string) error {
	return b.client.DeleteApplicant(ctx, id)
}
