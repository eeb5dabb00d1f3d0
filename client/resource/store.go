// Package resource tracks the request lifecycle of one CRUD resource.
package resource

import (
	"context"
	"sync"

	"smartjob-backend/client/api"
)

// Entity is anything with a store-assigned identifier.
type Entity interface {
	GetID() string
}

// Backend performs the requests of a resource against the API or local storage.
type Backend[T Entity, C any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in C) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

// Messages are shown when a failed request carries no server message.
type Messages struct {
	Fetch  string
	Create string
	Update string
	Delete string
}

var JobMessages = Messages{
	Fetch:  "Failed to load jobs",
	Create: "Failed to create job",
	Update: "Failed to update job",
	Delete: "Failed to delete job",
}

var ApplicantMessages = Messages{
	Fetch:  "Failed to load applicants",
	Create: "Failed to create applicant",
	Update: "Failed to update applicant",
	Delete: "Failed to delete applicant",
}

type State[T any] struct {
	Items   []T
	Loading bool
	Error   string // empty when there is nothing to show
	Success bool
}

// Store applies request outcomes to its state in the order they arrive. Requests run
// on the caller goroutine; concurrent calls race and the later reply wins.
type Store[T Entity, C any, P any] struct {
	backend  Backend[T, C, P]
	messages Messages

	mu    sync.Mutex
	state State[T]
}

func NewStore[T Entity, C any, P any](backend Backend[T, C, P], messages Messages) *Store[T, C, P] {
	return &Store[T, C, P]{
		backend:  backend,
		messages: messages,
		state:    State[T]{Items: []T{}},
	}
}

// FetchAll replaces the items with the backend list. A failure leaves the items as
// they were.
func (s *Store[T, C, P]) FetchAll(ctx context.Context) error {
	s.mutate(func(state *State[T]) {
		state.Loading = true
		state.Error = ""
	})
	list, err := s.backend.List(ctx)
	if err != nil {
		s.fail(err, s.messages.Fetch, true)
		return err
	}
	s.mutate(func(state *State[T]) {
		state.Loading = false
		state.Items = append([]T{}, list...)
	})
	return nil
}

func (s *Store[T, C, P]) Create(ctx context.Context, in C) (T, error) {
	item, err := s.backend.Create(ctx, in)
	if err != nil {
		s.fail(err, s.messages.Create, false)
		return item, err
	}
	s.mutate(func(state *State[T]) {
		state.Items = append(state.Items, item)
		state.Success = true
	})
	return item, nil
}

// Update replaces the item with the same id by the backend reply. An id missing from
// the items is not an error and leaves them unchanged.
func (s *Store[T, C, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	item, err := s.backend.Update(ctx, id, patch)
	if err != nil {
		s.fail(err, s.messages.Update, false)
		return item, err
	}
	s.mutate(func(state *State[T]) {
		for i := range state.Items {
			if state.Items[i].GetID() == item.GetID() {
				state.Items[i] = item
				return
			}
		}
	})
	return item, nil
}

func (s *Store[T, C, P]) Delete(ctx context.Context, id string) error {
	if err := s.backend.Delete(ctx, id); err != nil {
		s.fail(err, s.messages.Delete, false)
		return err
	}
	s.mutate(func(state *State[T]) {
		items := make([]T, 0, len(state.Items))
		for _, item := range state.Items {
			if item.GetID() != id {
				items = append(items, item)
			}
		}
		state.Items = items
	})
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store[T, C, P]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	state.Items = append([]T{}, s.state.Items...)
	return state
}

func (s *Store[T, C, P]) ClearError() {
	s.mutate(func(state *State[T]) {
		state.Error = ""
	})
}

func (s *Store[T, C, P]) ResetSuccess() {
	s.mutate(func(state *State[T]) {
		state.Success = false
	})
}

func (s *Store[T, C, P]) mutate(fn func(state *State[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *Store[T, C, P]) fail(err error, fallback string, stopLoading bool) {
	message := api.Message(err, fallback)
	s.mutate(func(state *State[T]) {
		if stopLoading {
			state.Loading = false
		}
		state.Error = message
	})
}
