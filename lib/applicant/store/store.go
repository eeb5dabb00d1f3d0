package applicantstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"smartjob-backend/models"
	dbmodels "smartjob-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	Update(recruiterID, id string, updMap map[string]interface{}) error
	Delete(recruiterID, id string) (found bool, err error)
	GetByID(recruiterID, id string) (rec *dbmodels.Applicant, err error)
	List(filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error)
	Count(filter dbmodels.ApplicantFilter) (int64, error)
	CountByStatus(recruiterID string) (map[models.ApplicantStatus]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(recruiterID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id)
	if recruiterID != "" {
		tx = tx.Where("recruiter_id = ?", recruiterID)
	}
	tx = tx.Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) Delete(recruiterID, id string) (bool, error) {
	tx := i.db.Where("id = ?", id)
	if recruiterID != "" {
		tx = tx.Where("recruiter_id = ?", recruiterID)
	}
	tx = tx.Delete(&dbmodels.Applicant{})
	if err := tx.Error; err != nil {
		return false, err
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) GetByID(recruiterID, id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id)
	if recruiterID != "" {
		tx = tx.Where("recruiter_id = ?", recruiterID)
	}
	err := tx.Preload("Job").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.ApplicantFilter) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.Model(dbmodels.Applicant{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Preload("Job").Order("created_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count(filter dbmodels.ApplicantFilter) (int64, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Applicant{})
	i.addFilter(tx, filter)
	if err := tx.Count(&rowCount).Error; err != nil {
		return 0, errors.Wrap(err, "applicant count failed")
	}
	return rowCount, nil
}

func (i impl) CountByStatus(recruiterID string) (map[models.ApplicantStatus]int64, error) {
	type row struct {
		Status models.ApplicantStatus
		Total  int64
	}
	rows := []row{}
	tx := i.db.
		Model(dbmodels.Applicant{}).
		Select("status, count(*) as total")
	if recruiterID != "" {
		tx = tx.Where("recruiter_id = ?", recruiterID)
	}
	if err := tx.Group("status").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "applicant count by status failed")
	}
	result := make(map[models.ApplicantStatus]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Total
	}
	return result, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicantFilter) {
	if filter.RecruiterID != "" {
		tx.Where("recruiter_id = ?", filter.RecruiterID)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(name) like ? or LOWER(email) like ? or contact like ?", searchValue, searchValue, searchValue)
	}
}
