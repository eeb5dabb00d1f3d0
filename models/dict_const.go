package models

import "github.com/pkg/errors"

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote}

func (t JobType) Validate() error {
	for _, v := range JobTypes {
		if v == t {
			return nil
		}
	}
	return errors.Errorf("unknown job type: %q", string(t))
}

type ExperienceLevel string

const (
	ExperienceFresher  ExperienceLevel = "Fresher"
	ExperienceJunior   ExperienceLevel = "Junior"
	ExperienceMidLevel ExperienceLevel = "Mid-level"
	ExperienceSenior   ExperienceLevel = "Senior"
	ExperienceLead     ExperienceLevel = "Lead"
)

var ExperienceLevels = []ExperienceLevel{ExperienceFresher, ExperienceJunior, ExperienceMidLevel, ExperienceSenior, ExperienceLead}

func (l ExperienceLevel) Validate() error {
	for _, v := range ExperienceLevels {
		if v == l {
			return nil
		}
	}
	return errors.Errorf("unknown experience level: %q", string(l))
}

type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "Pending"
	ApplicantStatusReviewed ApplicantStatus = "Reviewed"
	ApplicantStatusRejected ApplicantStatus = "Rejected"
)

var ApplicantStatuses = []ApplicantStatus{ApplicantStatusPending, ApplicantStatusReviewed, ApplicantStatusRejected}

func (s ApplicantStatus) Validate() error {
	for _, v := range ApplicantStatuses {
		if v == s {
			return nil
		}
	}
	return errors.Errorf("unknown applicant status: %q", string(s))
}

// IsAccepted reports whether the applicant shows up on the accepted list.
func (s ApplicantStatus) IsAccepted() bool {
	return s == ApplicantStatusReviewed
}
