package resource

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"smartjob-backend/client/api"
	"smartjob-backend/client/storage"
	"smartjob-backend/models"
	applicantapimodels "smartjob-backend/models/api/applicant"
	jobapimodels "smartjob-backend/models/api/job"
)

type fakeJobs struct {
	jobs   []jobapimodels.JobView
	nextID int
	err    error
}

func (f *fakeJobs) List(ctx context.Context) ([]jobapimodels.JobView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]jobapimodels.JobView{}, f.jobs...), nil
}

func (f *fakeJobs) Create(ctx context.Context, in jobapimodels.JobData) (jobapimodels.JobView, error) {
	if f.err != nil {
		return jobapimodels.JobView{}, f.err
	}
	f.nextID++
	job := jobapimodels.JobView{ID: fmt.Sprintf("job-%v", f.nextID), JobData: in}
	f.jobs = append(f.jobs, job)
	return job, nil
}

func (f *fakeJobs) Update(ctx context.Context, id string, patch jobapimodels.JobPatch) (jobapimodels.JobView, error) {
	if f.err != nil {
		return jobapimodels.JobView{}, f.err
	}
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			f.jobs[i] = patch.Apply(f.jobs[i])
			return f.jobs[i], nil
		}
	}
	// the server knows jobs the store has not fetched yet
	return patch.Apply(jobapimodels.JobView{ID: id}), nil
}

func (f *fakeJobs) Delete(ctx context.Context, id string) error {
	return f.err
}

func strPtr(value string) *string {
	return &value
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run(`fetch all`, func(t *testing.T) {
		backend := &fakeJobs{jobs: []jobapimodels.JobView{{ID: "a"}, {ID: "b"}}}
		store := NewStore[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch](backend, JobMessages)
		require.Nil(t, store.FetchAll(ctx))
		state := store.Snapshot()
		require.False(t, state.Loading)
		require.Empty(t, state.Error)
		require.Len(t, state.Items, 2)
	})

	t.Run(`fetch all failure keeps items`, func(t *testing.T) {
		backend := &fakeJobs{jobs: []jobapimodels.JobView{{ID: "a"}}}
		store := NewStore[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch](backend, JobMessages)
		require.Nil(t, store.FetchAll(ctx))

		backend.err = &api.Error{StatusCode: 500, Message: "database is down"}
		require.NotNil(t, store.FetchAll(ctx))
		state := store.Snapshot()
		require.False(t, state.Loading)
		require.Equal(t, "database is down", state.Error)
		require.Len(t, state.Items, 1)
		require.Equal(t, "a", state.Items[0].ID)

		backend.err = errors.New("connection refused")
		require.NotNil(t, store.FetchAll(ctx))
		require.Equal(t, "Failed to load jobs", store.Snapshot().Error)

		store.ClearError()
		require.Empty(t, store.Snapshot().Error)
	})

	t.Run(`create appends the server entity`, func(t *testing.T) {
		backend := &fakeJobs{}
		store := NewStore[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch](backend, JobMessages)
		for i := 1; i <= 3; i++ {
			before := len(store.Snapshot().Items)
			job, err := store.Create(ctx, jobapimodels.JobData{Title: "Go Developer"})
			require.Nil(t, err)
			state := store.Snapshot()
			require.Len(t, state.Items, before+1)
			require.Equal(t, job, state.Items[len(state.Items)-1])
			require.Equal(t, fmt.Sprintf("job-%v", i), job.ID)
			require.True(t, state.Success)
		}
		store.ResetSuccess()
		require.False(t, store.Snapshot().Success)

		backend.err = &api.Error{StatusCode: 400}
		_, err := store.Create(ctx, jobapimodels.JobData{})
		require.NotNil(t, err)
		require.Equal(t, "Failed to create job", store.Snapshot().Error)
		require.Len(t, store.Snapshot().Items, 3)
	})

	t.Run(`update replaces in place`, func(t *testing.T) {
		backend := &fakeJobs{jobs: []jobapimodels.JobView{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
		store := NewStore[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch](backend, JobMessages)
		require.Nil(t, store.FetchAll(ctx))

		_, err := store.Update(ctx, "b", jobapimodels.JobPatch{Title: strPtr("Senior Go Developer")})
		require.Nil(t, err)
		state := store.Snapshot()
		require.Equal(t, "Senior Go Developer", state.Items[1].Title)
		require.Equal(t, "b", state.Items[1].ID)
		require.Empty(t, state.Items[0].Title)
	})

	t.Run(`update of unknown id is a silent miss`, func(t *testing.T) {
		backend := &fakeJobs{jobs: []jobapimodels.JobView{{ID: "a"}}}
		store := NewStore[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch](backend, JobMessages)
		require.Nil(t, store.FetchAll(ctx))
		before := store.Snapshot()

		_, err := store.Update(ctx, "zzz", jobapimodels.JobPatch{Title: strPtr("Other")})
		require.Nil(t, err)
		after := store.Snapshot()
		require.Equal(t, before.Items, after.Items)
		require.Empty(t, after.Error)
	})

	t.Run(`delete filters the id out`, func(t *testing.T) {
		backend := &fakeJobs{jobs: []jobapimodels.JobView{{ID: "a"}, {ID: "b"}}}
		store := NewStore[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch](backend, JobMessages)
		require.Nil(t, store.FetchAll(ctx))

		require.Nil(t, store.Delete(ctx, "a"))
		for _, item := range store.Snapshot().Items {
			require.NotEqual(t, "a", item.ID)
		}

		backend.err = &api.Error{StatusCode: 404, Message: "Job not found"}
		require.NotNil(t, store.Delete(ctx, "b"))
		state := store.Snapshot()
		require.Equal(t, "Job not found", state.Error)
		require.Len(t, state.Items, 1)
	})

	t.Run(`snapshot is a copy`, func(t *testing.T) {
		backend := &fakeJobs{jobs: []jobapimodels.JobView{{ID: "a"}}}
		store := NewStore[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch](backend, JobMessages)
		require.Nil(t, store.FetchAll(ctx))
		state := store.Snapshot()
		state.Items[0].ID = "changed"
		require.Equal(t, "a", store.Snapshot().Items[0].ID)
	})
}

func TestLocalBackend(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemory()

	t.Run(`jobs`, func(t *testing.T) {
		store := NewStore(NewJobsLocal(s, func() string { return "rec-1" }), JobMessages)
		job, err := store.Create(ctx, jobapimodels.JobData{Title: "Go Developer", Skills: []string{"Go", " Go ", "SQL"}})
		require.Nil(t, err)
		require.NotEmpty(t, job.ID)
		require.Equal(t, "rec-1", job.RecruiterID)
		require.Equal(t, []string{"Go", "SQL"}, job.Skills)

		reloaded := NewStore(NewJobsLocal(s, func() string { return "rec-1" }), JobMessages)
		require.Nil(t, reloaded.FetchAll(ctx))
		require.Len(t, reloaded.Snapshot().Items, 1)

		updated, err := reloaded.Update(ctx, job.ID, jobapimodels.JobPatch{Location: strPtr("Remote")})
		require.Nil(t, err)
		require.Equal(t, "Remote", updated.Location)
		require.Equal(t, "Go Developer", updated.Title)

		_, err = reloaded.Update(ctx, "missing", jobapimodels.JobPatch{})
		require.True(t, errors.Is(err, ErrNotFound))
		require.Equal(t, "Failed to update job", reloaded.Snapshot().Error)

		require.Nil(t, reloaded.Delete(ctx, job.ID))
		require.Empty(t, reloaded.Snapshot().Items)
		list, err := NewJobsLocal(s, func() string { return "" }).List(ctx)
		require.Nil(t, err)
		require.Empty(t, list)
	})

	t.Run(`corrupt list reads as empty`, func(t *testing.T) {
		require.Nil(t, s.SetItem(storage.KeyApplicants, "[{broken"))
		store := NewStore(NewApplicantsLocal(s), ApplicantMessages)
		require.Nil(t, store.FetchAll(ctx))
		require.Empty(t, store.Snapshot().Items)
	})

	t.Run(`applicant status`, func(t *testing.T) {
		store := NewStore(NewApplicantsLocal(s), ApplicantMessages)
		first, err := store.Create(ctx, applicantapimodels.ApplicantData{Name: "Ann", Email: "ann@example.com", JobTitle: "Go Developer"})
		require.Nil(t, err)
		require.Equal(t, models.ApplicantStatusPending, first.Status)
		_, err = store.Create(ctx, applicantapimodels.ApplicantData{Name: "Bob", Email: "bob@example.com", JobTitle: "Go Developer"})
		require.Nil(t, err)

		_, err = store.Update(ctx, first.ID, applicantapimodels.StatusUpdate{Status: models.ApplicantStatusReviewed})
		require.Nil(t, err)
		accepted := FilterByStatus(store.Snapshot().Items, models.ApplicantStatusReviewed)
		require.Len(t, accepted, 1)
		require.Equal(t, "Ann", accepted[0].Name)
		require.Empty(t, FilterByStatus(store.Snapshot().Items, models.ApplicantStatusRejected))
	})
}
