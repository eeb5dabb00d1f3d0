package dbmodels

import (
	profileapimodels "smartjob-backend/models/api/profile"
)

type Profile struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);uniqueIndex"`
	User        *User  `gorm:"foreignKey:UserID"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	Location    string `gorm:"type:varchar(255)"`
	PhotoFileID string `gorm:"type:varchar(36)"`
}

func (r Profile) ToModel(photoUrl string) profileapimodels.ProfileView {
	view := profileapimodels.ProfileView{
		ID:     r.ID,
		UserID: r.UserID,
		ProfileData: profileapimodels.ProfileData{
			PhoneNumber: r.PhoneNumber,
			Location:    r.Location,
		},
	}
	if r.User != nil {
		view.Email = r.User.Email
		view.Role = r.User.Role
		view.FullName = r.User.Name
		view.CompanyName = r.User.CompanyName
	}
	if r.PhotoFileID != "" {
		view.Photo = photoUrl
	}
	return view
}
