// Package session holds the signed in identity of the dashboard client.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"smartjob-backend/client/api"
	"smartjob-backend/client/storage"
	"smartjob-backend/lib/utils/validate"
	"smartjob-backend/models"
	authapimodels "smartjob-backend/models/api/auth"
	userapimodels "smartjob-backend/models/api/user"
)

const (
	registerFailed = "Something went wrong"
	loginFailed    = "Invalid email or password"
	updateFailed   = "Failed to update profile"
)

// Backend talks to whatever keeps the accounts.
type Backend interface {
	// Register returns a login when registering also signs the user in, nil otherwise.
	Register(ctx context.Context, request authapimodels.RegisterRequest) (*authapimodels.LoginResponse, error)
	Login(ctx context.Context, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error)
	UpdateRecruiterProfile(ctx context.Context, userID string, request userapimodels.RecruiterProfileUpdate, photo *api.File) (userapimodels.UserView, error)
	SetToken(token string)
}

type State struct {
	User    *userapimodels.UserView
	Token   string
	Role    models.UserRole
	Loading bool
	Error   string
	Success bool
}

func (s State) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

type Store struct {
	backend Backend
	storage storage.Storage

	mu    sync.Mutex
	state State
}

// NewStore restores the identity saved by the last login. Missing or corrupt keys
// leave the session signed out.
func NewStore(backend Backend, s storage.Storage) *Store {
	store := &Store{
		backend: backend,
		storage: s,
	}
	user := new(userapimodels.UserView)
	if storage.LoadJSON(s, storage.KeyUser, user) {
		store.state.User = user
	}
	store.state.Token = storage.LoadString(s, storage.KeyToken)
	store.state.Role = models.UserRole(storage.LoadString(s, storage.KeyRole))
	if store.state.Token != "" {
		backend.SetToken(store.state.Token)
	}
	return store
}

func (s *Store) Register(ctx context.Context, form authapimodels.RegisterRequest) error {
	if err := form.ValidateForm(); err != nil {
		s.mutate(func(state *State) {
			state.Error = err.Error()
			state.Success = false
		})
		return err
	}
	s.mutate(func(state *State) {
		state.Loading = true
		state.Error = ""
		state.Success = false
	})
	resp, err := s.backend.Register(ctx, form)
	if err != nil {
		s.fail(err, registerFailed)
		return err
	}
	if resp != nil {
		if err = s.signIn(resp); err != nil {
			s.fail(err, registerFailed)
			return err
		}
	}
	s.mutate(func(state *State) {
		state.Loading = false
		state.Success = true
	})
	return nil
}

func (s *Store) Login(ctx context.Context, credentials authapimodels.LoginRequest) error {
	if err := credentials.Validate(); err != nil {
		s.mutate(func(state *State) {
			state.Error = err.Error()
		})
		return err
	}
	s.mutate(func(state *State) {
		state.Loading = true
		state.Error = ""
	})
	resp, err := s.backend.Login(ctx, credentials)
	if err != nil {
		s.fail(err, loginFailed)
		return err
	}
	if err = s.signIn(resp); err != nil {
		s.fail(err, loginFailed)
		return err
	}
	s.mutate(func(state *State) {
		state.Loading = false
	})
	return nil
}

// Logout forgets the identity. The registered accounts are kept.
func (s *Store) Logout() {
	s.mutate(func(state *State) {
		state.User = nil
		state.Token = ""
		state.Role = ""
	})
	s.backend.SetToken("")
	for _, key := range []string{storage.KeyToken, storage.KeyRole, storage.KeyUser} {
		if err := s.storage.RemoveItem(key); err != nil {
			log.WithError(err).WithField("storage_key", key).Warn("session key remove failed")
		}
	}
}

func (s *Store) UpdateRecruiterProfile(ctx context.Context, request userapimodels.RecruiterProfileUpdate, photo *api.File) error {
	if err := request.Validate(); err != nil {
		s.mutate(func(state *State) {
			state.Error = err.Error()
		})
		return err
	}
	userID := ""
	s.mutate(func(state *State) {
		state.Loading = true
		state.Error = ""
		if state.User != nil {
			userID = state.User.ID
		}
	})
	user, err := s.backend.UpdateRecruiterProfile(ctx, userID, request, photo)
	if err != nil {
		s.fail(err, updateFailed)
		return err
	}
	if err = storage.SaveJSON(s.storage, storage.KeyUser, user); err != nil {
		s.fail(err, updateFailed)
		return err
	}
	s.mutate(func(state *State) {
		state.Loading = false
		state.User = &user
	})
	return nil
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	if s.state.User != nil {
		user := *s.state.User
		state.User = &user
	}
	return state
}

func (s *Store) ResetSuccess() {
	s.mutate(func(state *State) {
		state.Success = false
	})
}

func (s *Store) ClearError() {
	s.mutate(func(state *State) {
		state.Error = ""
	})
}

// PasswordStrength classifies the password the way the registration form shows it.
func PasswordStrength(password string) validate.PasswordStrength {
	return validate.GetPasswordStrength(password)
}

func (s *Store) signIn(resp *authapimodels.LoginResponse) error {
	if err := s.storage.SetItem(storage.KeyToken, resp.Token); err != nil {
		return errors.Wrap(err, "token save failed")
	}
	if err := s.storage.SetItem(storage.KeyRole, string(resp.Role)); err != nil {
		return errors.Wrap(err, "role save failed")
	}
	if err := storage.SaveJSON(s.storage, storage.KeyUser, resp.User); err != nil {
		return err
	}
	s.backend.SetToken(resp.Token)
	user := resp.User
	s.mutate(func(state *State) {
		state.Token = resp.Token
		state.Role = resp.Role
		state.User = &user
	})
	return nil
}

func (s *Store) mutate(fn func(state *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *Store) fail(err error, fallback string) {
	message := errorMessage(err, fallback)
	s.mutate(func(state *State) {
		state.Loading = false
		state.Error = message
	})
}

func errorMessage(err error, fallback string) string {
	for _, known := range []error{ErrNoAccount, ErrInvalidPassword, ErrEmailTaken} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return api.Message(err, fallback)
}
