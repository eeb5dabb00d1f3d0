package applicantapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"smartjob-backend/lib/utils/validate"
	"smartjob-backend/models"
	apimodels "smartjob-backend/models/api"
)

type ApplicantData struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Contact  string `json:"contact" form:"contact"`     // phone number
	JobID    string `json:"job_id" form:"job_id"`       // optional link to a posted job
	JobTitle string `json:"job_title" form:"job_title"` // title shown when job_id is empty
	Resume   string `json:"resume" form:"resume"`       // external resume url
}

func (a ApplicantData) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("Applicant name is required")
	}
	if err := validate.Email(strings.TrimSpace(a.Email)); err != nil {
		return err
	}
	if strings.TrimSpace(a.JobID) == "" && strings.TrimSpace(a.JobTitle) == "" {
		return errors.New("Job title is required")
	}
	return nil
}

type ApplicantView struct {
	ID string `json:"id"`
	ApplicantData
	Status    models.ApplicantStatus `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
}

func (v ApplicantView) GetID() string {
	return v.ID
}

type StatusUpdate struct {
	Status models.ApplicantStatus `json:"status"`
}

func (r StatusUpdate) Validate() error {
	return r.Status.Validate()
}

type ApplicantFilter struct {
	apimodels.Pagination
	Status models.ApplicantStatus `json:"status" query:"status"`
	JobID  string                 `json:"job_id" query:"job_id"`
	Search string                 `json:"search" query:"search"` // name, email or contact
}

func (f ApplicantFilter) Validate() error {
	if f.Status == "" {
		return nil
	}
	return f.Status.Validate()
}
