package userapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"smartjob-backend/models"
)

type UserView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	CompanyName string          `json:"company_name"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Location    string          `json:"location,omitempty"`
	Avatar      string          `json:"avatar,omitempty"` // url of the profile photo
}

// RecruiterProfileUpdate is the multipart form of PUT /user/recruiter/profile.
// Nil fields keep their stored value.
type RecruiterProfileUpdate struct {
	Name        *string `json:"name,omitempty" form:"name"`
	CompanyName *string `json:"company_name,omitempty" form:"company_name"`
	PhoneNumber *string `json:"phone_number,omitempty" form:"phone_number"`
	Location    *string `json:"location,omitempty" form:"location"`
}

func (r RecruiterProfileUpdate) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("Full name is required")
	}
	if r.CompanyName != nil && strings.TrimSpace(*r.CompanyName) == "" {
		return errors.New("Company name is required")
	}
	if r.PhoneNumber != nil && len(*r.PhoneNumber) > 20 {
		return errors.New("Phone number is too long")
	}
	return nil
}

func (r RecruiterProfileUpdate) IsEmpty() bool {
	return r.Name == nil && r.CompanyName == nil && r.PhoneNumber == nil && r.Location == nil
}
