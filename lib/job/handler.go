package jobhandler

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"smartjob-backend/db"
	pdfexport "smartjob-backend/lib/export/pdf"
	jobstore "smartjob-backend/lib/job/store"
	initchecker "smartjob-backend/lib/utils/init-checker"
	"smartjob-backend/lib/utils/skills"
	connectionhub "smartjob-backend/lib/ws/hub/connection-hub"
	jobapimodels "smartjob-backend/models/api/job"
	dbmodels "smartjob-backend/models/db"
	wsmodels "smartjob-backend/models/ws"
)

var ErrJobNotFound = errors.New("Job not found")

type Provider interface {
	List(recruiterID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	Create(recruiterID string, data jobapimodels.JobData) (jobapimodels.JobView, error)
	GetByID(recruiterID, id string) (jobapimodels.JobView, error)
	Update(recruiterID, id string, patch jobapimodels.JobPatch) (view jobapimodels.JobView, hMsg string, err error)
	Delete(recruiterID, id string) error
	GetPdf(recruiterID, id string) (body []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
	)
	Instance = impl{
		store:  jobstore.NewInstance(db.DB),
		events: connectionhub.GetNotifier(),
	}
}

func NewInstance(store jobstore.Provider, events connectionhub.Notifier) Provider {
	return impl{
		store:  store,
		events: events,
	}
}

// recruiterID scopes every call to the recruiter's own jobs, empty means admin access
type impl struct {
	store  jobstore.Provider
	events connectionhub.Notifier
}

func (i impl) List(recruiterID string, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	dbFilter := dbmodels.JobFilter{
		RecruiterID: recruiterID,
		JobFilter:   filter,
	}
	rowCount, err := i.store.ListCount(dbFilter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(dbFilter)
	if err != nil {
		log.WithField("recruiter_id", recruiterID).WithError(err).Error("job list failed")
		return nil, 0, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

func (i impl) Create(recruiterID string, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	rec := dbmodels.Job{
		RecruiterID:     recruiterID,
		Title:           strings.TrimSpace(data.Title),
		Description:     strings.TrimSpace(data.Description),
		Qualification:   strings.TrimSpace(data.Qualification),
		SalaryMin:       data.SalaryMin,
		SalaryMax:       data.SalaryMax,
		JobType:         data.JobType,
		ExperienceLevel: data.ExperienceLevel,
		Location:        strings.TrimSpace(data.Location),
		Skills:          skills.Normalize(data.Skills),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithField("recruiter_id", recruiterID).WithError(err).Error("job not created")
		return jobapimodels.JobView{}, err
	}
	view, err := i.GetByID(recruiterID, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	i.notify(view.RecruiterID, wsmodels.JobCreated, id, view.Title)
	return view, nil
}

func (i impl) GetByID(recruiterID, id string) (jobapimodels.JobView, error) {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) Update(recruiterID, id string, patch jobapimodels.JobPatch) (view jobapimodels.JobView, hMsg string, err error) {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return jobapimodels.JobView{}, "", err
	}
	// the patched job must still be a valid job, e.g. salary_min against the stored salary_max
	updated := patch.Apply(rec.ToModel())
	if err = updated.JobData.Validate(); err != nil {
		return jobapimodels.JobView{}, err.Error(), nil
	}
	updMap := map[string]interface{}{}
	if patch.Title != nil {
		updMap["title"] = strings.TrimSpace(updated.Title)
	}
	if patch.Description != nil {
		updMap["description"] = strings.TrimSpace(updated.Description)
	}
	if patch.Qualification != nil {
		updMap["qualification"] = strings.TrimSpace(updated.Qualification)
	}
	if patch.SalaryMin != nil {
		updMap["salary_min"] = updated.SalaryMin
	}
	if patch.SalaryMax != nil {
		updMap["salary_max"] = updated.SalaryMax
	}
	if patch.JobType != nil {
		updMap["job_type"] = updated.JobType
	}
	if patch.ExperienceLevel != nil {
		updMap["experience_level"] = updated.ExperienceLevel
	}
	if patch.Location != nil {
		updMap["location"] = strings.TrimSpace(updated.Location)
	}
	if patch.Skills != nil {
		updMap["skills"] = pq.StringArray(updated.Skills)
	}
	if err = i.store.Update(recruiterID, id, updMap); err != nil {
		log.WithField("job_id", id).WithError(err).Error("job not updated")
		return jobapimodels.JobView{}, "", err
	}
	view, err = i.GetByID(recruiterID, id)
	if err != nil {
		return jobapimodels.JobView{}, "", err
	}
	i.notify(view.RecruiterID, wsmodels.JobUpdated, id, view.Title)
	return view, "", nil
}

func (i impl) Delete(recruiterID, id string) error {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return err
	}
	found, err := i.store.Delete(recruiterID, id)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("job not deleted")
		return err
	}
	if !found {
		return ErrJobNotFound
	}
	i.notify(rec.RecruiterID, wsmodels.JobDeleted, id, rec.Title)
	return nil
}

func (i impl) GetPdf(recruiterID, id string) ([]byte, string, error) {
	rec, err := i.get(recruiterID, id)
	if err != nil {
		return nil, "", err
	}
	companyName := ""
	if rec.Recruiter != nil {
		companyName = rec.Recruiter.CompanyName
	}
	body, err := pdfexport.GenerateJobPosting(rec.ToModel(), companyName)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("job pdf not generated")
		return nil, "", err
	}
	return body, pdfFileName(rec.Title), nil
}

func (i impl) get(recruiterID, id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(recruiterID, id)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("job lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, ErrJobNotFound
	}
	return rec, nil
}

func (i impl) notify(userID string, code wsmodels.EventCode, id, msg string) {
	if i.events == nil {
		return
	}
	i.events.Notify(userID, code, id, msg)
}

func pdfFileName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		case r == ' ' || r == '_':
			return '_'
		}
		return -1
	}, strings.TrimSpace(title))
	if name == "" {
		name = "job"
	}
	return name + ".pdf"
}
