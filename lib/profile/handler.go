package profilehandler

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"smartjob-backend/config"
	"smartjob-backend/db"
	filestorage "smartjob-backend/lib/file-storage"
	profilestore "smartjob-backend/lib/profile/store"
	userstore "smartjob-backend/lib/user/store"
	"smartjob-backend/lib/utils/helpers"
	initchecker "smartjob-backend/lib/utils/init-checker"
	connectionhub "smartjob-backend/lib/ws/hub/connection-hub"
	apimodels "smartjob-backend/models/api"
	profileapimodels "smartjob-backend/models/api/profile"
	dbmodels "smartjob-backend/models/db"
	wsmodels "smartjob-backend/models/ws"
)

var (
	ErrProfileNotFound = errors.New("Profile not found")
	ErrPhotoNotFound   = errors.New("Photo not found")
	ErrForbidden       = errors.New("Only the owner can change this profile")
)

type Provider interface {
	Create(ctx context.Context, userID string, data profileapimodels.ProfileData, photo *apimodels.UploadedFile) (profileapimodels.ProfileView, error)
	GetByID(id string) (profileapimodels.ProfileView, error)
	Update(ctx context.Context, userID, id string, patch profileapimodels.ProfilePatch, photo *apimodels.UploadedFile) (profileapimodels.ProfileView, error)
	GetPhoto(ctx context.Context, id string) ([]byte, *dbmodels.FileStorage, error)
}

var Instance Provider

type txFunc func(fn func(users userstore.Provider, profiles profilestore.Provider) error) error

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
		"filestorage.Instance", filestorage.Instance,
	)
	Instance = impl{
		profiles:   profilestore.NewInstance(db.DB),
		files:      filestorage.Instance,
		events:     connectionhub.GetNotifier(),
		publicHost: config.Conf.App.PublicHost,
		withTx: func(fn func(users userstore.Provider, profiles profilestore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(userstore.NewInstance(tx), profilestore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	profiles   profilestore.Provider
	files      filestorage.Provider
	events     connectionhub.Notifier
	publicHost string
	withTx     txFunc
}

// Create fills the caller's profile. Every account gets an empty profile at
// registration, so an existing record is completed instead of duplicated.
func (i impl) Create(ctx context.Context, userID string, data profileapimodels.ProfileData, photo *apimodels.UploadedFile) (profileapimodels.ProfileView, error) {
	rec, err := i.profiles.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("profile lookup failed")
		return profileapimodels.ProfileView{}, err
	}
	profileID := ""
	if rec == nil {
		profileID, err = i.profiles.Create(dbmodels.Profile{UserID: userID})
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Error("profile not created")
			return profileapimodels.ProfileView{}, err
		}
	} else {
		profileID = rec.ID
	}
	patch := profileapimodels.ProfilePatch{
		FullName:    &data.FullName,
		PhoneNumber: &data.PhoneNumber,
		Location:    &data.Location,
	}
	if strings.TrimSpace(data.CompanyName) != "" {
		patch.CompanyName = &data.CompanyName
	}
	return i.Update(ctx, userID, profileID, patch, photo)
}

func (i impl) GetByID(id string) (profileapimodels.ProfileView, error) {
	rec, err := i.get(id)
	if err != nil {
		return profileapimodels.ProfileView{}, err
	}
	return rec.ToModel(helpers.ProfilePhotoUrl(i.publicHost, rec.ID)), nil
}

func (i impl) Update(ctx context.Context, userID, id string, patch profileapimodels.ProfilePatch, photo *apimodels.UploadedFile) (profileapimodels.ProfileView, error) {
	logger := log.WithField("profile_id", id)
	rec, err := i.get(id)
	if err != nil {
		return profileapimodels.ProfileView{}, err
	}
	if rec.UserID != userID {
		return profileapimodels.ProfileView{}, ErrForbidden
	}
	userUpd := map[string]interface{}{}
	if patch.FullName != nil {
		userUpd["name"] = strings.TrimSpace(*patch.FullName)
	}
	if patch.CompanyName != nil {
		userUpd["company_name"] = strings.TrimSpace(*patch.CompanyName)
	}
	profileUpd := map[string]interface{}{}
	if patch.PhoneNumber != nil {
		profileUpd["phone_number"] = strings.TrimSpace(*patch.PhoneNumber)
	}
	if patch.Location != nil {
		profileUpd["location"] = strings.TrimSpace(*patch.Location)
	}
	photoID := ""
	if photo != nil {
		photoID, err = i.files.Upload(ctx, photo.Body, dbmodels.UploadFileInfo{
			OwnerID:     userID,
			FileName:    photo.FileName,
			FileType:    dbmodels.UserProfilePhoto,
			ContentType: photo.ContentType,
		})
		if err != nil {
			logger.WithError(err).Error("profile photo not uploaded")
			return profileapimodels.ProfileView{}, err
		}
		profileUpd["photo_file_id"] = photoID
	}
	err = i.withTx(func(users userstore.Provider, profiles profilestore.Provider) error {
		if err := users.Update(userID, userUpd); err != nil {
			return errors.Wrap(err, "user not updated")
		}
		if err := profiles.Update(id, profileUpd); err != nil {
			return errors.Wrap(err, "profile not updated")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("profile update failed")
		if photoID != "" {
			if delErr := i.files.Delete(ctx, photoID); delErr != nil {
				logger.WithError(delErr).Warn("orphan profile photo not removed")
			}
		}
		return profileapimodels.ProfileView{}, err
	}
	if photo != nil && rec.PhotoFileID != "" {
		if err := i.files.Delete(ctx, rec.PhotoFileID); err != nil {
			logger.WithError(err).Warn("previous profile photo not removed")
		}
	}
	if i.events != nil {
		i.events.Notify(userID, wsmodels.ProfileUpdated, id, "")
	}
	return i.GetByID(id)
}

func (i impl) GetPhoto(ctx context.Context, id string) ([]byte, *dbmodels.FileStorage, error) {
	rec, err := i.get(id)
	if err != nil {
		return nil, nil, err
	}
	if rec.PhotoFileID == "" {
		return nil, nil, ErrPhotoNotFound
	}
	return i.files.GetFile(ctx, rec.PhotoFileID)
}

func (i impl) get(id string) (*dbmodels.Profile, error) {
	rec, err := i.profiles.GetByID(id)
	if err != nil {
		log.WithField("profile_id", id).WithError(err).Error("profile lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, ErrProfileNotFound
	}
	return rec, nil
}
