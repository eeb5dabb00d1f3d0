package db

import (
	log "github.com/sirupsen/logrus"
	"smartjob-backend/config"
	applicantstore "smartjob-backend/lib/applicant/store"
	userstore "smartjob-backend/lib/user/store"
	authutils "smartjob-backend/lib/utils/auth-utils"
	"smartjob-backend/lib/utils/validate"
	"smartjob-backend/models"
	dbmodels "smartjob-backend/models/db"
)

func InitPreload() {
	adminID := addAdmin()
	if adminID != "" && config.Conf.Database.SeedDemoData != nil && *config.Conf.Database.SeedDemoData {
		fillDemoApplicants(adminID)
	}
}

func addAdmin() string {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin user not added, ADMIN_EMAIL is empty")
		return ""
	}
	store := userstore.NewInstance(DB)
	email := validate.NormalizeEmail(config.Conf.Admin.Email)
	existedRec, err := store.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("admin lookup failed")
		return ""
	}
	if existedRec != nil {
		return existedRec.ID
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("admin user not added")
		return ""
	}
	rec := dbmodels.User{
		IsActive:    true,
		Role:        models.AdminRole,
		Password:    hash,
		Name:        config.Conf.Admin.Name,
		Email:       email,
		CompanyName: config.Conf.Admin.CompanyName,
	}
	id, err := store.Create(rec)
	if err != nil {
		log.WithError(err).Error("admin user not added")
		return ""
	}
	return id
}

var demoApplicants = []dbmodels.Applicant{
	{JobTitle: "Frontend Developer", Name: "Ayushi Gupta", Email: "ayushi@example.com", Contact: "7078596818", Status: models.ApplicantStatusPending, ResumeUrl: "https://example.com/resume-ayushi.pdf"},
	{JobTitle: "Backend Developer", Name: "Sneha Sharma", Email: "sneha@example.com", Contact: "9876501234", Status: models.ApplicantStatusReviewed, ResumeUrl: "https://example.com/resume-sneha.pdf"},
	{JobTitle: "UI/UX Designer", Name: "Rahul Gupta", Email: "rahul@example.com", Contact: "9988776655", Status: models.ApplicantStatusRejected, ResumeUrl: "https://example.com/resume-rahul.pdf"},
	{JobTitle: "Frontend Developer", Name: "Amit Verma", Email: "amit@example.com", Contact: "9876543210", Status: models.ApplicantStatusPending, ResumeUrl: "https://example.com/resume-amit.pdf"},
}

func fillDemoApplicants(recruiterID string) {
	store := applicantstore.NewInstance(DB)
	count, err := store.Count(dbmodels.ApplicantFilter{RecruiterID: recruiterID})
	if err != nil {
		log.WithError(err).Error("demo applicants not added")
		return
	}
	if count != 0 {
		return
	}
	for _, rec := range demoApplicants {
		rec.RecruiterID = recruiterID
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).Error("demo applicant not added")
			return
		}
	}
	log.WithField("count", len(demoApplicants)).Info("demo applicants added")
}
