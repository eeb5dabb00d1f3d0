// Package profile tracks the single profile shown on the profile page.
package profile

import (
	"context"
	"sync"

	"smartjob-backend/client/api"
	profileapimodels "smartjob-backend/models/api/profile"
)

const (
	createFailed = "Error creating profile"
	fetchFailed  = "Error fetching profile"
	updateFailed = "Error updating profile"
)

type Backend interface {
	CreateProfile(ctx context.Context, data profileapimodels.ProfileData, photo *api.File) (profileapimodels.ProfileView, error)
	GetProfile(ctx context.Context, id string) (profileapimodels.ProfileView, error)
	UpdateProfile(ctx context.Context, id string, patch profileapimodels.ProfilePatch, photo *api.File) (profileapimodels.ProfileView, error)
}

type State struct {
	Profile *profileapimodels.ProfileView
	Loading bool
	Error   string
}

type Store struct {
	backend Backend

	mu    sync.Mutex
	state State
}

// NewStore builds the store; *api.Client is the usual backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Create(ctx context.Context, data profileapimodels.ProfileData, photo *api.File) error {
	if err := data.Validate(); err != nil {
		s.setError(err.Error())
		return err
	}
	return s.run(createFailed, func() (profileapimodels.ProfileView, error) {
		return s.backend.CreateProfile(ctx, data, photo)
	})
}

func (s *Store) Get(ctx context.Context, id string) error {
	return s.run(fetchFailed, func() (profileapimodels.ProfileView, error) {
		return s.backend.GetProfile(ctx, id)
	})
}

func (s *Store) Update(ctx context.Context, id string, patch profileapimodels.ProfilePatch, photo *api.File) error {
	if err := patch.Validate(); err != nil {
		s.setError(err.Error())
		return err
	}
	return s.run(updateFailed, func() (profileapimodels.ProfileView, error) {
		return s.backend.UpdateProfile(ctx, id, patch, photo)
	})
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	if s.state.Profile != nil {
		profile := *s.state.Profile
		state.Profile = &profile
	}
	return state
}

func (s *Store) ClearError() {
	s.setError("")
}

// run applies the pending, fulfilled and rejected transitions around request.
func (s *Store) run(fallback string, request func() (profileapimodels.ProfileView, error)) error {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()

	profile, err := request()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Error = api.Message(err, fallback)
		return err
	}
	s.state.Profile = &profile
	return nil
}

func (s *Store) setError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = message
}
