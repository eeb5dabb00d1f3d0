// Package app composes the dashboard client stores into one application state.
package app

import (
	"time"

	log "github.com/sirupsen/logrus"
	"smartjob-backend/client/api"
	"smartjob-backend/client/profile"
	"smartjob-backend/client/resource"
	"smartjob-backend/client/session"
	"smartjob-backend/client/storage"
	applicantapimodels "smartjob-backend/models/api/applicant"
)

// State is handed to every consumer of the client; there is no package-level instance.
type State struct {
	Session    *session.Store
	Jobs       *resource.JobStore
	Applicants *resource.ApplicantStore
	Profile    *profile.Store

	// Client is nil for the local-only state.
	Client *api.Client
}

// NewRemote builds the state served by the REST API at cfg.Api.Host.
func NewRemote(cfg *Config, s storage.Storage) *State {
	client := api.NewClient(cfg.Api.Host, time.Duration(cfg.Api.TimeoutSec)*time.Second)
	state := &State{
		Session:    session.NewStore(session.NewRemote(client), s),
		Jobs:       resource.NewStore(resource.NewJobsAPI(client), resource.JobMessages),
		Applicants: resource.NewStore(resource.NewApplicantsAPI(client, applicantapimodels.ApplicantFilter{}), resource.ApplicantMessages),
		Profile:    profile.NewStore(client),
		Client:     client,
	}
	log.WithField("api_host", cfg.Api.Host).Info("dashboard client ready")
	return state
}

// NewLocal builds the state that keeps accounts, jobs and applicants in s only.
func NewLocal(s storage.Storage) *State {
	state := &State{}
	state.Session = session.NewStore(session.NewLocal(s), s)
	state.Jobs = resource.NewStore(resource.NewJobsLocal(s, state.currentUserID), resource.JobMessages)
	state.Applicants = resource.NewStore(resource.NewApplicantsLocal(s), resource.ApplicantMessages)
	state.Profile = profile.NewStore(profile.NewLocal(s))
	log.Info("dashboard client ready, local storage only")
	return state
}

// Open opens the SQLite storage of cfg and builds the matching state. close releases
// the storage.
func Open(cfg *Config) (state *State, close func() error, err error) {
	s, err := storage.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LocalOnly != nil && *cfg.LocalOnly {
		return NewLocal(s), s.Close, nil
	}
	return NewRemote(cfg, s), s.Close, nil
}

func (s *State) currentUserID() string {
	user := s.Session.Snapshot().User
	if user == nil {
		return ""
	}
	return user.ID
}
