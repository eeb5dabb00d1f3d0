// Package storage is the durable key/value storage of the dashboard client.
package storage

import (
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	KeyRegisteredUsers = "registeredUsers"
	KeyUser            = "user"
	KeyToken           = "token"
	KeyRole            = "role"
	KeyJobs            = "jobs"
	KeyApplicants      = "applicants"
	KeyProfiles        = "profiles"
)

// Storage keeps string values by key. Writes to different keys are independent.
type Storage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Keys() ([]string, error)
	Clear() error
}

// LoadJSON decodes the value stored under key into out. Missing, unreadable and
// corrupt values are reported as absent; the latter two are logged.
func LoadJSON(s Storage, key string, out interface{}) bool {
	value, ok, err := s.GetItem(key)
	if err != nil {
		log.WithError(err).WithField("storage_key", key).Warn("storage read failed")
		return false
	}
	if !ok || value == "" || value == "undefined" || value == "null" {
		return false
	}
	if err = json.Unmarshal([]byte(value), out); err != nil {
		log.WithError(err).WithField("storage_key", key).Warn("invalid JSON in storage")
		return false
	}
	return true
}

func SaveJSON(s Storage, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "storage value for %q serialization failed", key)
	}
	return s.SetItem(key, string(raw))
}

// LoadString returns the plain value under key, empty when absent.
func LoadString(s Storage, key string) string {
	value, ok, err := s.GetItem(key)
	if err != nil {
		log.WithError(err).WithField("storage_key", key).Warn("storage read failed")
		return ""
	}
	if !ok || value == "undefined" || value == "null" {
		return ""
	}
	return value
}
