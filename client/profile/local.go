package profile

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"smartjob-backend/client/api"
	"smartjob-backend/client/storage"
	profileapimodels "smartjob-backend/models/api/profile"
)

type local struct {
	storage storage.Storage
	mu      sync.Mutex
}

// NewLocal keeps the profiles under the profiles storage key, photos inline as data URLs.
func NewLocal(s storage.Storage) Backend {
	return &local{storage: s}
}

func (l *local) CreateProfile(ctx context.Context, data profileapimodels.ProfileData, photo *api.File) (profileapimodels.ProfileView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	profile := profileapimodels.ProfileView{
		ID:          uuid.New().String(),
		ProfileData: data,
	}
	if photo != nil {
		profile.Photo = dataURL(photo)
	}
	profiles := append(l.load(), profile)
	return profile, storage.SaveJSON(l.storage, storage.KeyProfiles, profiles)
}

func (l *local) GetProfile(ctx context.Context, id string) (profileapimodels.ProfileView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, profile := range l.load() {
		if profile.ID == id {
			return profile, nil
		}
	}
	return profileapimodels.ProfileView{}, &api.Error{StatusCode: http.StatusNotFound, Message: "Profile not found"}
}

func (l *local) UpdateProfile(ctx context.Context, id string, patch profileapimodels.ProfilePatch, photo *api.File) (profileapimodels.ProfileView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	profiles := l.load()
	for i := range profiles {
		if profiles[i].ID != id {
			continue
		}
		profiles[i] = applyPatch(profiles[i], patch)
		if photo != nil {
			profiles[i].Photo = dataURL(photo)
		}
		return profiles[i], storage.SaveJSON(l.storage, storage.KeyProfiles, profiles)
	}
	return profileapimodels.ProfileView{}, &api.Error{StatusCode: http.StatusNotFound, Message: "Profile not found"}
}

func (l *local) load() []profileapimodels.ProfileView {
	profiles := []profileapimodels.ProfileView{}
	if !storage.LoadJSON(l.storage, storage.KeyProfiles, &profiles) {
		return []profileapimodels.ProfileView{}
	}
	return profiles
}

func applyPatch(profile profileapimodels.ProfileView, patch profileapimodels.ProfilePatch) profileapimodels.ProfileView {
	if patch.FullName != nil {
		profile.FullName = *patch.FullName
	}
	if patch.CompanyName != nil {
		profile.CompanyName = *patch.CompanyName
	}
	if patch.PhoneNumber != nil {
		profile.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Location != nil {
		profile.Location = *patch.Location
	}
	return profile
}

func dataURL(file *api.File) string {
	contentType := file.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(file.Body)
	}
	return fmt.Sprintf("data:%v;base64,%v", contentType, base64.StdEncoding.EncodeToString(file.Body))
}
