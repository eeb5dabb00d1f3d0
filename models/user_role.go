package models

import "github.com/pkg/errors"

type UserRole string

const (
	RecruiterRole UserRole = "Recruiter"
	AdminRole     UserRole = "Admin"
)

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

func (r UserRole) Validate() error {
	switch r {
	case RecruiterRole, AdminRole:
		return nil
	}
	return errors.Errorf("unknown role: %q", string(r))
}
