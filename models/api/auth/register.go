package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"smartjob-backend/lib/utils/validate"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	CompanyName     string `json:"company_name"`
	AcceptTerms     bool   `json:"accept_terms"`
}

// Validate runs the server-side registration checks. The confirmation fields are
// only enforced when the client sends them.
func (r RegisterRequest) Validate() error {
	if err := r.ValidateFields(); err != nil {
		return err
	}
	if r.ConfirmPassword != "" && r.Password != r.ConfirmPassword {
		return errors.New("Passwords do not match")
	}
	return nil
}

// ValidateFields checks presence, email shape and password strength in the order
// the registration form reports them.
func (r RegisterRequest) ValidateFields() error {
	if err := validate.Required(r.Name, "Full name is required"); err != nil {
		return err
	}
	if err := validate.Required(r.Email, "Email address is required"); err != nil {
		return err
	}
	if r.Password == "" {
		return errors.New("Password is required")
	}
	if err := validate.Required(r.CompanyName, "Company name is required"); err != nil {
		return err
	}
	if err := validate.Email(strings.TrimSpace(r.Email)); err != nil {
		return err
	}
	return validate.Password(r.Password)
}

// ValidateForm is the full check the dashboard form performs before submitting.
func (r RegisterRequest) ValidateForm() error {
	if err := validate.Required(r.Name, "Full name is required"); err != nil {
		return err
	}
	if err := validate.Required(r.Email, "Email address is required"); err != nil {
		return err
	}
	if r.Password == "" {
		return errors.New("Password is required")
	}
	if r.ConfirmPassword == "" {
		return errors.New("Please confirm your password")
	}
	if err := r.ValidateFields(); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return errors.New("Passwords do not match")
	}
	if !r.AcceptTerms {
		return errors.New("Please accept the terms and conditions to continue")
	}
	return nil
}
