package dbmodels

import (
	"time"

	"smartjob-backend/models"
	userapimodels "smartjob-backend/models/api/user"
)

type User struct {
	BaseModel
	Password    string          `gorm:"type:varchar(128)"` // bcrypt hash
	Name        string          `gorm:"type:varchar(255)"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex"` // stored lower-cased
	Role        models.UserRole `gorm:"type:varchar(50)"`
	CompanyName string          `gorm:"type:varchar(255)"`
	IsActive    bool
	LastLogin   time.Time
	Profile     *Profile `gorm:"foreignKey:UserID"`
}

func (r User) ToModel(avatarUrl string) userapimodels.UserView {
	view := userapimodels.UserView{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Role:        r.Role,
		CompanyName: r.CompanyName,
	}
	if r.Profile != nil {
		view.PhoneNumber = r.Profile.PhoneNumber
		view.Location = r.Profile.Location
		if r.Profile.PhotoFileID != "" {
			view.Avatar = avatarUrl
		}
	}
	return view
}
