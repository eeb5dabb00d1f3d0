package resource

import (
	"smartjob-backend/models"
	applicantapimodels "smartjob-backend/models/api/applicant"
)

// FilterByStatus returns the applicants having status, keeping their order. The
// accepted list is FilterByStatus(items, models.ApplicantStatusReviewed).
func FilterByStatus(items []applicantapimodels.ApplicantView, status models.ApplicantStatus) []applicantapimodels.ApplicantView {
	result := []applicantapimodels.ApplicantView{}
	for _, item := range items {
		if item.Status == status {
			result = append(result, item)
		}
	}
	return result
}
