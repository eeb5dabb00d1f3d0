package applicanthandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"smartjob-backend/config"
	"smartjob-backend/db"
	applicantstore "smartjob-backend/lib/applicant/store"
	xlsexport "smartjob-backend/lib/export/xls"
	filestorage "smartjob-backend/lib/file-storage"
	jobstore "smartjob-backend/lib/job/store"
	"smartjob-backend/lib/utils/helpers"
	initchecker "smartjob-backend/lib/utils/init-checker"
	"smartjob-backend/lib/utils/validate"
	connectionhub "smartjob-backend/lib/ws/hub/connection-hub"
	"smartjob-backend/models"
	apimodels "smartjob-backend/models/api"
	applicantapimodels "smartjob-backend/models/api/applicant"
	dbmodels "smartjob-backend/models/db"
	wsmodels "smartjob-backend/models/ws"
)

var (
	ErrApplicantNotFound = errors.New("Applicant not found")
	ErrResumeNotFound    = errors.New("Resume not found")
)

const exportPageSize = apimodels.MaxPageLimit

type Provider interface {
	List(recruiterID string, filter applicantapimodels.ApplicantFilter) (list []applicantapimodels.ApplicantView, rowCount int64, err error)
	Create(ctx context.Context, recruiterID, userID string, data applicantapimodels.ApplicantData, resume *apimodels.UploadedFile) (view applicantapimodels.ApplicantView, hMsg string, err error)
	GetByID(recruiterID, id string) (applicantapimodels.ApplicantView, error)
	UpdateStatus(recruiterID, id string, status models.ApplicantStatus) (applicantapimodels.ApplicantView, error)
	Delete(ctx context.Context, recruiterID, id string) error
	GetResume(ctx context.Context, recruiterID, id string) ([]byte, *dbmodels.FileStorage, error)
	Export(recruiterID string, filter applicantapimodels.ApplicantFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
		"filestorage.Instance", filestorage.Instance,
		"xlsexport.Instance", xlsexport.Instance,
	)
	Instance = impl{
		store:      applicantstore.NewInstance(db.DB),
		jobStore:   jobstore.NewInstance(db.DB),
		files:      filestorage.Instance,
		xls:        xlsexport.Instance,
		events:     connectionhub.GetNotifier(),
		publicHost: config.Conf.App.PublicHost,
	}
}

type impl struct {
	store      applicantstore.Provider
	jobStore   jobstore.Provider
	files      filestorage.Provider
	xls        xlsexport.Provider
	events     connectionhub.Notifier
	publicHost string
}

func (i impl) List(recruiterID string, filter applicantapimodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, int64, error) {
	dbFilter := dbmodels.ApplicantFilter{
		RecruiterID:     recruiterID,
		ApplicantFilter: filter,
	}
	rowCount, err := i.store.Count(dbFilter)
	if err != nil {
		log.WithField("recruiter_id", recruiterID).WithError(err).Error("applicant count failed")
		return nil, 0, err
	}
	list, err := i.store.List(dbFilter)
	if err != nil {
		log.WithField("recruiter_id", recruiterID).WithError(err).Error("applicant list failed")
		return nil, 0, err
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

// Create adds an applicant. recruiterID is the caller's scope (empty for admins),
// userID owns applicants that are not linked to a job.
func (i impl) Create(ctx context.Context, recruiterID, userID string, data applicantapimodels.ApplicantData, resume *apimodels.UploadedFile) (applicantapimodels.ApplicantView, string, error) {
	rec := dbmodels.Applicant{
		RecruiterID: recruiterID,
		JobTitle:    strings.TrimSpace(data.JobTitle),
		Name:        strings.TrimSpace(data.Name),
		Email:       validate.NormalizeEmail(data.Email),
		Contact:     strings.TrimSpace(data.Contact),
		Status:      models.ApplicantStatusPending,
		ResumeUrl:   strings.TrimSpace(data.Resume),
	}
	if jobID := strings.TrimSpace(data.JobID); jobID != "" {
		job, err := i.jobStore.GetByID(recruiterID, jobID)
		if err != nil {
			log.WithField("job_id", jobID).WithError(err).Error("job lookup failed")
			return applicantapimodels.ApplicantView{}, "", err
		}
		if job == nil {
			return applicantapimodels.ApplicantView{}, "Job not found", nil
		}
		rec.JobID = &job.ID
		rec.JobTitle = job.Title
		rec.RecruiterID = job.RecruiterID
	}
	if rec.RecruiterID == "" {
		rec.RecruiterID = userID
	}
	if rec.RecruiterID == "" {
		return applicantapimodels.ApplicantView{}, "Applicant must belong to a job or a recruiter", nil
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithField("recruiter_id", rec.RecruiterID).WithError(err).Error("applicant not created")
		return applicantapimodels.ApplicantView{}, "", err
	}
	if resume != nil {
		if err = i.attachResume(ctx, rec.RecruiterID, id, resume); err != nil {
			// a failed create leaves nothing behind, so the client can retry
			if _, delErr := i.store.Delete(rec.RecruiterID, id); delErr != nil {
				log.WithField("applicant_id", id).WithError(delErr).Error("applicant without resume not removed")
			}
			return applicantapimodels.ApplicantView{}, "", err
		}
	}
	view, err := i.GetByID(recruiterID, id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, "", err
	}
	i.notify(rec.RecruiterID, wsmodels.ApplicantCreated, id, view.Name)
	return view, "", nil
}

func (i impl) attachResume(ctx context.Context, recruiterID, id string, resume *apimodels.UploadedFile) error {
	logger := log.WithField("applicant_id", id)
	fileID, err := i.files.Upload(ctx, resume.Body, dbmodels.UploadFileInfo{
		OwnerID:     id,
		FileName:    resume.FileName,
		FileType:    dbmodels.ApplicantResume,
		ContentType: resume.ContentType,
	})
	if err != nil {
		logger.WithError(err).Error("resume not uploaded")
		return err
	}
	updMap := map[string]interface{}{
		"resume_file_id": fileID,
		"resume_url":     helpers.ApplicantResumeUrl(i.publicHost, id),
	}
	if err = i.store.Update(recruiterID, id, updMap); err != nil {
		logger.WithError(err).Error("resume not linked to applicant")
		if delErr := i.files.Delete(ctx, fileID); delErr != nil {
			logger.WithError(delErr).Warn("unlinked resume file not removed")
		}
		return err
	}
	return nil
}

func (i impl) GetByID(recruiterID, id string) (applicantapimodels.ApplicantView, error) {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) UpdateStatus(recruiterID, id string, status models.ApplicantStatus) (applicantapimodels.ApplicantView, error) {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	changed, err := rec.IsAllowStatusChange(status)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	if !changed {
		return rec.ToModel(), nil
	}
	err = i.store.Update(recruiterID, id, map[string]interface{}{"status": status})
	if err != nil {
		log.WithField("applicant_id", id).WithError(err).Error("applicant status not updated")
		return applicantapimodels.ApplicantView{}, err
	}
	rec.Status = status
	i.notify(rec.RecruiterID, wsmodels.ApplicantStatusChanged, id, string(status))
	return rec.ToModel(), nil
}

func (i impl) Delete(ctx context.Context, recruiterID, id string) error {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return err
	}
	found, err := i.store.Delete(recruiterID, id)
	if err != nil {
		log.WithField("applicant_id", id).WithError(err).Error("applicant not deleted")
		return err
	}
	if !found {
		return ErrApplicantNotFound
	}
	if rec.ResumeFileID != "" && i.files != nil {
		if err = i.files.Delete(ctx, rec.ResumeFileID); err != nil {
			log.WithField("applicant_id", id).WithError(err).Warn("resume file not removed")
		}
	}
	i.notify(rec.RecruiterID, wsmodels.ApplicantDeleted, id, rec.Name)
	return nil
}

func (i impl) GetResume(ctx context.Context, recruiterID, id string) ([]byte, *dbmodels.FileStorage, error) {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return nil, nil, err
	}
	if rec.ResumeFileID == "" {
		return nil, nil, ErrResumeNotFound
	}
	return i.files.GetFile(ctx, rec.ResumeFileID)
}

func (i impl) Export(recruiterID string, filter applicantapimodels.ApplicantFilter) (*bytes.Buffer, error) {
	result := []applicantapimodels.ApplicantView{}
	filter.Limit = exportPageSize
	for page := 1; ; page++ {
		filter.Page = page
		list, _, err := i.List(recruiterID, filter)
		if err != nil {
			return nil, err
		}
		result = append(result, list...)
		if len(list) < exportPageSize {
			break
		}
	}
	body, err := i.xls.ExportApplicantList(result)
	if err != nil {
		log.WithField("recruiter_id", recruiterID).WithError(err).Error("applicant export failed")
		return nil, err
	}
	return body, nil
}

func (i impl) get(recruiterID, id string) (*dbmodels.Applicant, error) {
	rec, err := i.store.GetByID(recruiterID, id)
	if err != nil {
		log.WithField("applicant_id", id).WithError(err).Error("applicant lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, ErrApplicantNotFound
	}
	return rec, nil
}

func (i impl) notify(userID string, code wsmodels.EventCode, id, msg string) {
	if i.events == nil {
		return
	}
	i.events.Notify(userID, code, id, msg)
}
