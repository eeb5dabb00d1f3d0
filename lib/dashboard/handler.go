package dashboardhandler

import (
	log "github.com/sirupsen/logrus"
	"smartjob-backend/db"
	applicantstore "smartjob-backend/lib/applicant/store"
	jobstore "smartjob-backend/lib/job/store"
	initchecker "smartjob-backend/lib/utils/init-checker"
	"smartjob-backend/models"
	dashboardapimodels "smartjob-backend/models/api/dashboard"
	dbmodels "smartjob-backend/models/db"
)

type Provider interface {
	GetStats(recruiterID string) (dashboardapimodels.Stats, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
	)
	Instance = impl{
		jobStore:       jobstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	jobStore       jobstore.Provider
	applicantStore applicantstore.Provider
}

func (i impl) GetStats(recruiterID string) (dashboardapimodels.Stats, error) {
	logger := log.WithField("recruiter_id", recruiterID)
	activeJobs, err := i.jobStore.ListCount(dbmodels.JobFilter{RecruiterID: recruiterID})
	if err != nil {
		logger.WithError(err).Error("job count failed")
		return dashboardapimodels.Stats{}, err
	}
	byStatus, err := i.applicantStore.CountByStatus(recruiterID)
	if err != nil {
		logger.WithError(err).Error("applicant count failed")
		return dashboardapimodels.Stats{}, err
	}
	stats := dashboardapimodels.Stats{
		ActiveJobs: activeJobs,
		Pending:    byStatus[models.ApplicantStatusPending],
		Reviewed:   byStatus[models.ApplicantStatusReviewed],
		Rejected:   byStatus[models.ApplicantStatusRejected],
	}
	for _, count := range byStatus {
		stats.TotalApplications += count
	}
	return stats, nil
}
