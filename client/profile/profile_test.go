package profile

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"smartjob-backend/client/api"
	"smartjob-backend/client/storage"
	profileapimodels "smartjob-backend/models/api/profile"
)

type fakeBackend struct {
	profiles  map[string]profileapimodels.ProfileView
	err       error
	lastPhoto *api.File
}

func (f *fakeBackend) CreateProfile(ctx context.Context, data profileapimodels.ProfileData, photo *api.File) (profileapimodels.ProfileView, error) {
	if f.err != nil {
		return profileapimodels.ProfileView{}, f.err
	}
	f.lastPhoto = photo
	profile := profileapimodels.ProfileView{ID: "profile-1", ProfileData: data}
	f.profiles[profile.ID] = profile
	return profile, nil
}

func (f *fakeBackend) GetProfile(ctx context.Context, id string) (profileapimodels.ProfileView, error) {
	if f.err != nil {
		return profileapimodels.ProfileView{}, f.err
	}
	profile, ok := f.profiles[id]
	if !ok {
		return profileapimodels.ProfileView{}, &api.Error{StatusCode: 404, Message: "Profile not found"}
	}
	return profile, nil
}

func (f *fakeBackend) UpdateProfile(ctx context.Context, id string, patch profileapimodels.ProfilePatch, photo *api.File) (profileapimodels.ProfileView, error) {
	if f.err != nil {
		return profileapimodels.ProfileView{}, f.err
	}
	profile := f.profiles[id]
	if patch.Location != nil {
		profile.Location = *patch.Location
	}
	f.profiles[id] = profile
	return profile, nil
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{profiles: map[string]profileapimodels.ProfileView{}}
	store := NewStore(backend)

	t.Run(`create`, func(t *testing.T) {
		err := store.Create(ctx, profileapimodels.ProfileData{FullName: "Test", CompanyName: "Acme"}, &api.File{FileName: "me.png", Body: []byte("png")})
		require.Nil(t, err)
		state := store.Snapshot()
		require.False(t, state.Loading)
		require.Equal(t, "profile-1", state.Profile.ID)
		require.Equal(t, "me.png", backend.lastPhoto.FileName)
	})

	t.Run(`validation stops the request`, func(t *testing.T) {
		backend.lastPhoto = nil
		err := store.Create(ctx, profileapimodels.ProfileData{}, &api.File{FileName: "x.png"})
		require.EqualError(t, err, "Full name is required")
		require.Nil(t, backend.lastPhoto)
		require.Equal(t, "Full name is required", store.Snapshot().Error)
	})

	t.Run(`get and update`, func(t *testing.T) {
		require.Nil(t, store.Get(ctx, "profile-1"))
		require.Empty(t, store.Snapshot().Error)

		location := "Pune"
		require.Nil(t, store.Update(ctx, "profile-1", profileapimodels.ProfilePatch{Location: &location}, nil))
		require.Equal(t, "Pune", store.Snapshot().Profile.Location)
	})

	t.Run(`errors`, func(t *testing.T) {
		require.NotNil(t, store.Get(ctx, "missing"))
		state := store.Snapshot()
		require.Equal(t, "Profile not found", state.Error)
		require.Equal(t, "profile-1", state.Profile.ID)

		backend.err = errors.New("connection reset")
		require.NotNil(t, store.Get(ctx, "profile-1"))
		require.Equal(t, "Error fetching profile", store.Snapshot().Error)
		require.NotNil(t, store.Update(ctx, "profile-1", profileapimodels.ProfilePatch{}, nil))
		require.Equal(t, "Error updating profile", store.Snapshot().Error)
		require.NotNil(t, store.Create(ctx, profileapimodels.ProfileData{FullName: "Test"}, nil))
		require.Equal(t, "Error creating profile", store.Snapshot().Error)

		store.ClearError()
		require.Empty(t, store.Snapshot().Error)
	})
}

func TestLocal(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemory()
	store := NewStore(NewLocal(s))

	require.Nil(t, store.Create(ctx, profileapimodels.ProfileData{FullName: "Test", CompanyName: "Acme"}, nil))
	id := store.Snapshot().Profile.ID
	require.NotEmpty(t, id)

	phone := "+49 30 1234"
	require.Nil(t, NewStore(NewLocal(s)).Update(ctx, id, profileapimodels.ProfilePatch{PhoneNumber: &phone}, &api.File{ContentType: "image/png", Body: []byte("png")}))

	reloaded := NewStore(NewLocal(s))
	require.Nil(t, reloaded.Get(ctx, id))
	profile := reloaded.Snapshot().Profile
	require.Equal(t, "Test", profile.FullName)
	require.Equal(t, phone, profile.PhoneNumber)
	require.Equal(t, "data:image/png;base64,cG5n", profile.Photo)

	require.NotNil(t, reloaded.Get(ctx, "missing"))
	require.Equal(t, "Profile not found", reloaded.Snapshot().Error)
}
