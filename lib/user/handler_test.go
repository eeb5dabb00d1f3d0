package userhandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"smartjob-backend/config"
	profilestore "smartjob-backend/lib/profile/store"
	userstore "smartjob-backend/lib/user/store"
	"smartjob-backend/models"
	apimodels "smartjob-backend/models/api"
	authapimodels "smartjob-backend/models/api/auth"
	userapimodels "smartjob-backend/models/api/user"
	dbmodels "smartjob-backend/models/db"
)

type fakeUsers struct {
	recs map[string]*dbmodels.User
	seq  int
	// profiles are attached on read like the Preload of the real store
	profiles *fakeProfiles
}

func (s *fakeUsers) Create(rec dbmodels.User) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("user-%d", s.seq)
	s.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (s *fakeUsers) Update(userID string, updMap map[string]interface{}) error {
	rec, ok := s.recs[userID]
	if !ok {
		return fmt.Errorf("record not found")
	}
	for key, value := range updMap {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "company_name":
			rec.CompanyName = value.(string)
		}
	}
	return nil
}

func (s *fakeUsers) ExistByEmail(email string) (bool, error) {
	rec, _ := s.FindByEmail(email)
	return rec != nil, nil
}

func (s *fakeUsers) FindByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range s.recs {
		if rec.Email == email {
			return s.withProfile(rec), nil
		}
	}
	return nil, nil
}

func (s *fakeUsers) GetByID(userID string) (*dbmodels.User, error) {
	rec, ok := s.recs[userID]
	if !ok {
		return nil, nil
	}
	return s.withProfile(rec), nil
}

func (s *fakeUsers) withProfile(rec *dbmodels.User) *dbmodels.User {
	cp := *rec
	if profile, _ := s.profiles.GetByUserID(rec.ID); profile != nil {
		cp.Profile = profile
	}
	return &cp
}

type fakeProfiles struct {
	recs map[string]*dbmodels.Profile
	seq  int
}

func (s *fakeProfiles) Create(rec dbmodels.Profile) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("profile-%d", s.seq)
	s.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (s *fakeProfiles) Update(id string, updMap map[string]interface{}) error {
	rec, ok := s.recs[id]
	if !ok {
		return fmt.Errorf("record not found")
	}
	for key, value := range updMap {
		switch key {
		case "phone_number":
			rec.PhoneNumber = value.(string)
		case "location":
			rec.Location = value.(string)
		case "photo_file_id":
			rec.PhotoFileID = value.(string)
		}
	}
	return nil
}

func (s *fakeProfiles) GetByID(id string) (*dbmodels.Profile, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeProfiles) GetByUserID(userID string) (*dbmodels.Profile, error) {
	for _, rec := range s.recs {
		if rec.UserID == userID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeFiles struct {
	uploaded []dbmodels.UploadFileInfo
	deleted  []string
}

func (f *fakeFiles) Upload(ctx context.Context, file []byte, info dbmodels.UploadFileInfo) (string, error) {
	f.uploaded = append(f.uploaded, info)
	return fmt.Sprintf("file-%d", len(f.uploaded)), nil
}

func (f *fakeFiles) GetFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	return nil, nil, fmt.Errorf("not implemented")
}

func (f *fakeFiles) Delete(ctx context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	return nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) SendEMail(from, to, message, subject string) error {
	m.sent = append(m.sent, to)
	return nil
}

func (m *fakeMailer) IsConfigured() bool {
	return true
}

func getInstance() (impl, *fakeUsers, *fakeFiles, *fakeMailer) {
	profiles := &fakeProfiles{recs: map[string]*dbmodels.Profile{}}
	users := &fakeUsers{recs: map[string]*dbmodels.User{}, profiles: profiles}
	files := &fakeFiles{}
	mailer := &fakeMailer{}
	h := impl{
		users:      users,
		profiles:   profiles,
		files:      files,
		mailer:     mailer,
		emailFrom:  "noreply@smartjob.test",
		publicHost: "http://localhost:6000",
		withTx: func(fn func(users userstore.Provider, profiles profilestore.Provider) error) error {
			return fn(users, profiles)
		},
	}
	return h, users, files, mailer
}

func TestUserHandler(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60

	h, users, files, mailer := getInstance()
	registration := authapimodels.RegisterRequest{
		Name:        "Test",
		Email:       "Test@Example.com",
		Password:    "TestPass@123",
		CompanyName: "Acme",
	}

	t.Run(`register creates recruiter with profile`, func(t *testing.T) {
		user, hMsg, err := h.Register(registration)
		require.Nil(t, err)
		require.Equal(t, "", hMsg)
		require.Equal(t, "test@example.com", user.Email)
		require.Equal(t, models.RecruiterRole, user.Role)
		require.Equal(t, "Acme", user.CompanyName)
		require.NotEqual(t, registration.Password, users.recs[user.ID].Password)
		profile, _ := users.profiles.GetByUserID(user.ID)
		require.NotNil(t, profile)
		require.Equal(t, []string{"test@example.com"}, mailer.sent)
	})

	t.Run(`register rejects duplicate email ignoring case`, func(t *testing.T) {
		request := registration
		request.Email = "TEST@example.COM"
		_, hMsg, err := h.Register(request)
		require.Nil(t, err)
		require.Equal(t, "User with this email already exists", hMsg)
		require.Len(t, users.recs, 1)
	})

	t.Run(`login`, func(t *testing.T) {
		resp, err := h.Login(authapimodels.LoginRequest{Email: "test@example.com", Password: "TestPass@123"})
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, models.RecruiterRole, resp.Role)
		require.Equal(t, "Test", resp.User.Name)
	})

	t.Run(`login with wrong password or unknown email`, func(t *testing.T) {
		_, err := h.Login(authapimodels.LoginRequest{Email: "test@example.com", Password: "WrongPass@123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = h.Login(authapimodels.LoginRequest{Email: "nobody@example.com", Password: "TestPass@123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run(`update recruiter profile`, func(t *testing.T) {
		userID := "user-1"
		name := "Test Recruiter"
		phone := "7078596818"
		photo := &apimodels.UploadedFile{FileName: "me.png", ContentType: "image/png", Body: []byte{1, 2, 3}}
		user, err := h.UpdateRecruiterProfile(context.TODO(), userID, userapimodels.RecruiterProfileUpdate{
			Name:        &name,
			PhoneNumber: &phone,
		}, photo)
		require.Nil(t, err)
		require.Equal(t, name, user.Name)
		require.Equal(t, "Acme", user.CompanyName)
		require.Equal(t, phone, user.PhoneNumber)
		require.Equal(t, "http://localhost:6000/api/profiles/profile-1/photo", user.Avatar)
		require.Len(t, files.uploaded, 1)
		require.Equal(t, dbmodels.UserProfilePhoto, files.uploaded[0].FileType)

		// a second photo replaces the first one
		_, err = h.UpdateRecruiterProfile(context.TODO(), userID, userapimodels.RecruiterProfileUpdate{}, photo)
		require.Nil(t, err)
		require.Equal(t, []string{"file-1"}, files.deleted)
	})

	t.Run(`failed profile update drops the new photo`, func(t *testing.T) {
		failing := h
		failing.withTx = func(fn func(users userstore.Provider, profiles profilestore.Provider) error) error {
			return fmt.Errorf("tx failed")
		}
		photo := &apimodels.UploadedFile{FileName: "new.png", ContentType: "image/png", Body: []byte{4}}
		_, err := failing.UpdateRecruiterProfile(context.TODO(), "user-1", userapimodels.RecruiterProfileUpdate{}, photo)
		require.EqualError(t, err, "tx failed")
		require.Equal(t, []string{"file-1", "file-3"}, files.deleted)

		profile, _ := users.profiles.GetByUserID("user-1")
		require.Equal(t, "file-2", profile.PhotoFileID)
	})

	t.Run(`me of unknown user`, func(t *testing.T) {
		_, err := h.Me("user-404")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
