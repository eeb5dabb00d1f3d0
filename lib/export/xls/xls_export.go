package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	applicantapimodels "smartjob-backend/models/api/applicant"
)

type Provider interface {
	ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	applicantSheet = "Applicants"
	applicantTable = "ApplicantList"
	dateLayout     = "2006-01-02"
)

var applicantHeaders = []string{"Name", "Email", "Contact", "Job", "Status", "Applied", "Resume"}

func (i impl) ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	if err := f.SetSheetName(f.GetSheetName(0), applicantSheet); err != nil {
		return nil, errors.Wrap(err, "xlsx sheet not renamed")
	}
	w, err := newSheetWriter(f, applicantSheet, applicantTable, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header not written")
	}
	for _, item := range list {
		applied := ""
		if !item.CreatedAt.IsZero() {
			applied = item.CreatedAt.Format(dateLayout)
		}
		err = w.writeRow([]interface{}{
			w.data(item.Name),
			w.data(item.Email),
			w.data(item.Contact),
			w.data(item.JobTitle),
			w.status(item.Status),
			w.data(applied),
			w.data(item.Resume),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "xlsx row for applicant %v not written", item.ID)
		}
	}
	if err = w.close(); err != nil {
		return nil, errors.Wrap(err, "xlsx sheet not flushed")
	}
	return f.WriteToBuffer()
}
