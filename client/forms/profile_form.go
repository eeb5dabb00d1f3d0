package forms

import (
	"smartjob-backend/client/api"
	userapimodels "smartjob-backend/models/api/user"
)

// ProfileForm is the recruiter profile card: read-only until Edit, Cancel drops the
// unsaved changes.
type ProfileForm struct {
	Name        string
	CompanyName string
	PhoneNumber string
	Location    string
	Photo       *api.File

	original userapimodels.UserView
	editing  bool
}

func NewProfileForm(user userapimodels.UserView) *ProfileForm {
	form := &ProfileForm{}
	form.reset(user)
	return form
}

func (f *ProfileForm) Editing() bool {
	return f.editing
}

func (f *ProfileForm) Edit() {
	f.editing = true
}

func (f *ProfileForm) Cancel() {
	f.reset(f.original)
}

// Saved takes the stored user as the new original and leaves edit mode.
func (f *ProfileForm) Saved(user userapimodels.UserView) {
	f.reset(user)
}

// Patch holds only the fields changed since the form was opened.
func (f *ProfileForm) Patch() userapimodels.RecruiterProfileUpdate {
	patch := userapimodels.RecruiterProfileUpdate{}
	if f.Name != f.original.Name {
		name := f.Name
		patch.Name = &name
	}
	if f.CompanyName != f.original.CompanyName {
		companyName := f.CompanyName
		patch.CompanyName = &companyName
	}
	if f.PhoneNumber != f.original.PhoneNumber {
		phoneNumber := f.PhoneNumber
		patch.PhoneNumber = &phoneNumber
	}
	if f.Location != f.original.Location {
		location := f.Location
		patch.Location = &location
	}
	return patch
}

func (f *ProfileForm) HasChanges() bool {
	return !f.Patch().IsEmpty() || f.Photo != nil
}

func (f *ProfileForm) reset(user userapimodels.UserView) {
	f.original = user
	f.Name = user.Name
	f.CompanyName = user.CompanyName
	f.PhoneNumber = user.PhoneNumber
	f.Location = user.Location
	f.Photo = nil
	f.editing = false
}
