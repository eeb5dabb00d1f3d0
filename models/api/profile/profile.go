package profileapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"smartjob-backend/models"
)

type ProfileData struct {
	FullName    string `json:"full_name" form:"full_name"`
	CompanyName string `json:"company_name" form:"company_name"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Location    string `json:"location" form:"location"`
}

func (p ProfileData) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return errors.New("Full name is required")
	}
	if len(p.PhoneNumber) > 20 {
		return errors.New("Phone number is too long")
	}
	return nil
}

// ProfilePatch changes only the non-nil fields.
type ProfilePatch struct {
	FullName    *string `json:"full_name,omitempty" form:"full_name"`
	CompanyName *string `json:"company_name,omitempty" form:"company_name"`
	PhoneNumber *string `json:"phone_number,omitempty" form:"phone_number"`
	Location    *string `json:"location,omitempty" form:"location"`
}

func (p ProfilePatch) Validate() error {
	if p.FullName != nil && strings.TrimSpace(*p.FullName) == "" {
		return errors.New("Full name is required")
	}
	if p.PhoneNumber != nil && len(*p.PhoneNumber) > 20 {
		return errors.New("Phone number is too long")
	}
	return nil
}

func (p ProfilePatch) IsEmpty() bool {
	return p.FullName == nil && p.CompanyName == nil && p.PhoneNumber == nil && p.Location == nil
}

type ProfileView struct {
	ID     string          `json:"id"`
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	ProfileData
	Photo string `json:"photo,omitempty"` // url of the uploaded photo
}
