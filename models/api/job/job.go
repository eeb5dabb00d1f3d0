package jobapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"smartjob-backend/lib/utils/skills"
	"smartjob-backend/models"
	apimodels "smartjob-backend/models/api"
)

type JobData struct {
	Title           string                 `json:"title"`            // job title
	Description     string                 `json:"description"`      // job description
	Qualification   string                 `json:"qualification"`    // required skills and qualifications
	SalaryMin       int                    `json:"salary_min"`       // lower bound of the salary range
	SalaryMax       int                    `json:"salary_max"`       // upper bound of the salary range
	JobType         models.JobType         `json:"job_type"`         // Full-time/Part-time/Contract/Internship/Remote
	ExperienceLevel models.ExperienceLevel `json:"experience_level"` // Fresher/Junior/Mid-level/Senior/Lead
	Location        string                 `json:"location"`
	Skills          []string               `json:"skills"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("Job title is required")
	}
	if strings.TrimSpace(j.Description) == "" {
		return errors.New("Job description is required")
	}
	if strings.TrimSpace(j.Qualification) == "" {
		return errors.New("Qualification is required")
	}
	if err := validateSalary(j.SalaryMin, j.SalaryMax); err != nil {
		return err
	}
	if err := j.JobType.Validate(); err != nil {
		return err
	}
	if err := j.ExperienceLevel.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(j.Location) == "" {
		return errors.New("Location is required")
	}
	return nil
}

// JobPatch is a field-level update; nil fields are left unchanged.
type JobPatch struct {
	Title           *string                 `json:"title,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	Qualification   *string                 `json:"qualification,omitempty"`
	SalaryMin       *int                    `json:"salary_min,omitempty"`
	SalaryMax       *int                    `json:"salary_max,omitempty"`
	JobType         *models.JobType         `json:"job_type,omitempty"`
	ExperienceLevel *models.ExperienceLevel `json:"experience_level,omitempty"`
	Location        *string                 `json:"location,omitempty"`
	Skills          *[]string               `json:"skills,omitempty"`
}

func (p JobPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("Job title is required")
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return errors.New("Job description is required")
	}
	if p.Qualification != nil && strings.TrimSpace(*p.Qualification) == "" {
		return errors.New("Qualification is required")
	}
	if p.SalaryMin != nil && *p.SalaryMin < 0 || p.SalaryMax != nil && *p.SalaryMax < 0 {
		return errors.New("Salary can not be negative")
	}
	if p.SalaryMin != nil && p.SalaryMax != nil {
		if err := validateSalary(*p.SalaryMin, *p.SalaryMax); err != nil {
			return err
		}
	}
	if p.JobType != nil {
		if err := p.JobType.Validate(); err != nil {
			return err
		}
	}
	if p.ExperienceLevel != nil {
		if err := p.ExperienceLevel.Validate(); err != nil {
			return err
		}
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return errors.New("Location is required")
	}
	return nil
}

func (p JobPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Qualification == nil &&
		p.SalaryMin == nil && p.SalaryMax == nil && p.JobType == nil &&
		p.ExperienceLevel == nil && p.Location == nil && p.Skills == nil
}

// Apply returns a copy of view with the patch fields written over it.
func (p JobPatch) Apply(view JobView) JobView {
	if p.Title != nil {
		view.Title = *p.Title
	}
	if p.Description != nil {
		view.Description = *p.Description
	}
	if p.Qualification != nil {
		view.Qualification = *p.Qualification
	}
	if p.SalaryMin != nil {
		view.SalaryMin = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		view.SalaryMax = *p.SalaryMax
	}
	if p.JobType != nil {
		view.JobType = *p.JobType
	}
	if p.ExperienceLevel != nil {
		view.ExperienceLevel = *p.ExperienceLevel
	}
	if p.Location != nil {
		view.Location = *p.Location
	}
	if p.Skills != nil {
		view.Skills = skills.Normalize(*p.Skills)
	}
	return view
}

type JobView struct {
	ID string `json:"id"`
	JobData
	RecruiterID string    `json:"recruiter_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (v JobView) GetID() string {
	return v.ID
}

type JobFilter struct {
	apimodels.Pagination
	Search          string                 `json:"search" query:"search"`
	JobType         models.JobType         `json:"job_type" query:"job_type"`
	ExperienceLevel models.ExperienceLevel `json:"experience_level" query:"experience_level"`
}

func validateSalary(min, max int) error {
	if min < 0 || max < 0 {
		return errors.New("Salary can not be negative")
	}
	if min > 0 && max > 0 && min > max {
		return errors.New("Minimum salary can not exceed maximum salary")
	}
	return nil
}
