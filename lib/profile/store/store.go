package profilestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "smartjob-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Profile) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Profile, err error)
	GetByUserID(userID string) (rec *dbmodels.Profile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Profile) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Profile{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Profile, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetByUserID(userID string) (*dbmodels.Profile, error) {
	return i.first(i.db.Where("user_id = ?", userID))
}

func (i impl) first(tx *gorm.DB) (*dbmodels.Profile, error) {
	rec := dbmodels.Profile{}
	err := tx.
		Model(&dbmodels.Profile{}).
		Preload("User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
