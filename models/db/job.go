package dbmodels

import (
	"github.com/lib/pq"
	"smartjob-backend/models"
	jobapimodels "smartjob-backend/models/api/job"
)

type Job struct {
	BaseModel
	RecruiterID     string `gorm:"type:varchar(36);index"`
	Recruiter       *User  `gorm:"foreignKey:RecruiterID"`
	Title           string `gorm:"type:varchar(255)"`
	Description     string
	Qualification   string
	SalaryMin       int
	SalaryMax       int
	JobType         models.JobType         `gorm:"type:varchar(50)"`
	ExperienceLevel models.ExperienceLevel `gorm:"type:varchar(50)"`
	Location        string                 `gorm:"type:varchar(255)"`
	Skills          pq.StringArray         `gorm:"type:text[]"`
}

func (r Job) ToModel() jobapimodels.JobView {
	skills := []string(r.Skills)
	if skills == nil {
		skills = []string{}
	}
	return jobapimodels.JobView{
		ID: r.ID,
		JobData: jobapimodels.JobData{
			Title:           r.Title,
			Description:     r.Description,
			Qualification:   r.Qualification,
			SalaryMin:       r.SalaryMin,
			SalaryMax:       r.SalaryMax,
			JobType:         r.JobType,
			ExperienceLevel: r.ExperienceLevel,
			Location:        r.Location,
			Skills:          skills,
		},
		RecruiterID: r.RecruiterID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type JobFilter struct {
	RecruiterID string // empty for admins
	jobapimodels.JobFilter
}
