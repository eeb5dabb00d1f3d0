package dbmodels

import (
	"smartjob-backend/models"
	applicantapimodels "smartjob-backend/models/api/applicant"
)

type Applicant struct {
	BaseModel
	RecruiterID  string                 `gorm:"type:varchar(36);index"`
	JobID        *string                `gorm:"type:varchar(36);index"`
	Job          *Job                   `gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL"`
	JobTitle     string                 `gorm:"type:varchar(255)"`
	Name         string                 `gorm:"type:varchar(255)"`
	Email        string                 `gorm:"type:varchar(255)"`
	Contact      string                 `gorm:"type:varchar(50)"`
	Status       models.ApplicantStatus `gorm:"type:varchar(20);index"`
	ResumeUrl    string
	ResumeFileID string `gorm:"type:varchar(36)"`
}

func (a Applicant) ToModel() applicantapimodels.ApplicantView {
	view := applicantapimodels.ApplicantView{
		ID: a.ID,
		ApplicantData: applicantapimodels.ApplicantData{
			Name:     a.Name,
			Email:    a.Email,
			Contact:  a.Contact,
			JobTitle: a.JobTitle,
			Resume:   a.ResumeUrl,
		},
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
	if a.JobID != nil {
		view.JobID = *a.JobID
	}
	if a.Job != nil && a.Job.Title != "" {
		view.JobTitle = a.Job.Title
	}
	return view
}

// IsAllowStatusChange reports whether moving to newStatus changes anything.
func (a Applicant) IsAllowStatusChange(newStatus models.ApplicantStatus) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, err
	}
	return a.Status != newStatus, nil
}

type ApplicantFilter struct {
	RecruiterID string
	applicantapimodels.ApplicantFilter
}
