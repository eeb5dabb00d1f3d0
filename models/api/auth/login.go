package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"smartjob-backend/lib/utils/validate"
	"smartjob-backend/models"
	userapimodels "smartjob-backend/models/api/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("Email address is required")
	}
	if err := validate.Email(strings.TrimSpace(r.Email)); err != nil {
		return err
	}
	if r.Password == "" {
		return errors.New("Password is required")
	}
	return nil
}

type LoginResponse struct {
	Token string                 `json:"token"`
	Role  models.UserRole        `json:"role"`
	User  userapimodels.UserView `json:"user"`
}
