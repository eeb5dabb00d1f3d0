package resource

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"smartjob-backend/client/storage"
	"smartjob-backend/lib/utils/skills"
	"smartjob-backend/models"
	applicantapimodels "smartjob-backend/models/api/applicant"
	jobapimodels "smartjob-backend/models/api/job"
)

var ErrNotFound = errors.New("record not found")

// local keeps the whole list as one JSON value under key. Every write rewrites it.
type local[T Entity, C any, P any] struct {
	storage storage.Storage
	key     string
	build   func(id string, in C) T
	apply   func(item T, patch P) T

	mu sync.Mutex
}

// NewLocal is a backend over a storage key. build makes a new item with the given id,
// apply returns the item with patch written over it.
func NewLocal[T Entity, C any, P any](s storage.Storage, key string, build func(id string, in C) T, apply func(item T, patch P) T) Backend[T, C, P] {
	return &local[T, C, P]{
		storage: s,
		key:     key,
		build:   build,
		apply:   apply,
	}
}

func (b *local[T, C, P]) List(ctx context.Context) ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(), nil
}

func (b *local[T, C, P]) Create(ctx context.Context, in C) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	item := b.build(uuid.New().String(), in)
	list := append(b.load(), item)
	if err := storage.SaveJSON(b.storage, b.key, list); err != nil {
		var empty T
		return empty, err
	}
	return item, nil
}

func (b *local[T, C, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.load()
	for i := range list {
		if list[i].GetID() != id {
			continue
		}
		list[i] = b.apply(list[i], patch)
		if err := storage.SaveJSON(b.storage, b.key, list); err != nil {
			var empty T
			return empty, err
		}
		return list[i], nil
	}
	var empty T
	return empty, ErrNotFound
}

func (b *local[T, C, P]) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.load()
	result := make([]T, 0, len(list))
	for _, item := range list {
		if item.GetID() != id {
			result = append(result, item)
		}
	}
	if len(result) == len(list) {
		return ErrNotFound
	}
	return storage.SaveJSON(b.storage, b.key, result)
}

func (b *local[T, C, P]) load() []T {
	list := []T{}
	if !storage.LoadJSON(b.storage, b.key, &list) {
		return []T{}
	}
	return list
}

// NewJobsLocal keeps the jobs under the jobs storage key.
func NewJobsLocal(s storage.Storage, recruiterID func() string) Backend[jobapimodels.JobView, jobapimodels.JobData, jobapimodels.JobPatch] {
	return NewLocal(s, storage.KeyJobs,
		func(id string, in jobapimodels.JobData) jobapimodels.JobView {
			now := time.Now()
			in.Skills = skills.Normalize(in.Skills)
			return jobapimodels.JobView{
				ID:          id,
				JobData:     in,
				RecruiterID: recruiterID(),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		func(item jobapimodels.JobView, patch jobapimodels.JobPatch) jobapimodels.JobView {
			item = patch.Apply(item)
			item.UpdatedAt = time.Now()
			return item
		})
}

// NewApplicantsLocal keeps the applicants under the applicants storage key. New
// applicants start as Pending.
func NewApplicantsLocal(s storage.Storage) Backend[applicantapimodels.ApplicantView, applicantapimodels.ApplicantData, applicantapimodels.StatusUpdate] {
	return NewLocal(s, storage.KeyApplicants,
		func(id string, in applicantapimodels.ApplicantData) applicantapimodels.ApplicantView {
			return applicantapimodels.ApplicantView{
				ID:            id,
				ApplicantData: in,
				Status:        models.ApplicantStatusPending,
				CreatedAt:     time.Now(),
			}
		},
		func(item applicantapimodels.ApplicantView, patch applicantapimodels.StatusUpdate) applicantapimodels.ApplicantView {
			item.Status = patch.Status
			return item
		})
}
