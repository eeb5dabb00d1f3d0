package dashboardhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	jobstore "smartjob-backend/lib/job/store"
	"smartjob-backend/models"
	dbmodels "smartjob-backend/models/db"
)

type fakeJobStore struct {
	jobstore.Provider
	counts map[string]int64
}

func (s fakeJobStore) ListCount(filter dbmodels.JobFilter) (int64, error) {
	return s.counts[filter.RecruiterID], nil
}

type fakeApplicantStore struct {
	counts map[models.ApplicantStatus]int64
}

func (s fakeApplicantStore) Create(rec dbmodels.Applicant) (string, error) { return "", nil }

func (s fakeApplicantStore) Update(recruiterID, id string, updMap map[string]interface{}) error {
	return nil
}

func (s fakeApplicantStore) Delete(recruiterID, id string) (bool, error) { return false, nil }

func (s fakeApplicantStore) GetByID(recruiterID, id string) (*dbmodels.Applicant, error) {
	return nil, nil
}

func (s fakeApplicantStore) List(filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error) {
	return nil, nil
}

func (s fakeApplicantStore) Count(filter dbmodels.ApplicantFilter) (int64, error) { return 0, nil }

func (s fakeApplicantStore) CountByStatus(recruiterID string) (map[models.ApplicantStatus]int64, error) {
	return s.counts, nil
}

func TestDashboardHandler(t *testing.T) {
	t.Run(`stats check`, func(t *testing.T) {
		h := impl{
			jobStore: fakeJobStore{counts: map[string]int64{"rec-1": 3}},
			applicantStore: fakeApplicantStore{counts: map[models.ApplicantStatus]int64{
				models.ApplicantStatusPending:  2,
				models.ApplicantStatusReviewed: 1,
				models.ApplicantStatusRejected: 1,
			}},
		}
		stats, err := h.GetStats("rec-1")
		require.Nil(t, err)
		require.Equal(t, int64(3), stats.ActiveJobs)
		require.Equal(t, int64(4), stats.TotalApplications)
		require.Equal(t, int64(2), stats.Pending)
		require.Equal(t, int64(1), stats.Reviewed)
		require.Equal(t, int64(1), stats.Rejected)
	})
}
