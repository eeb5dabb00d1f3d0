package jobstore

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "smartjob-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(recruiterID, id string) (rec *dbmodels.Job, err error)
	Update(recruiterID, id string, updMap map[string]interface{}) error
	Delete(recruiterID, id string) (found bool, err error)
	ListCount(filter dbmodels.JobFilter) (count int64, err error)
	List(filter dbmodels.JobFilter) (list []dbmodels.Job, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetByID limits the lookup to recruiterID's jobs unless it is empty.
func (i impl) GetByID(recruiterID, id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id)
	if recruiterID != "" {
		tx = tx.Where("recruiter_id = ?", recruiterID)
	}
	err := tx.Preload("Recruiter").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(recruiterID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
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
	tx = tx.Delete(&dbmodels.Job{})
	if err := tx.Error; err != nil {
		return false, err
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) ListCount(filter dbmodels.JobFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Job{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("job count failed")
		return 0, errors.New("job count failed")
	}
	return rowCount, nil
}

func (i impl) List(filter dbmodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.Model(dbmodels.Job{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.JobFilter) {
	if filter.RecruiterID != "" {
		tx.Where("recruiter_id = ?", filter.RecruiterID)
	}
	if filter.JobType != "" {
		tx.Where("job_type = ?", filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		tx.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(title) like ? or LOWER(location) like ?", searchValue, searchValue)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
