package userhandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"smartjob-backend/config"
	"smartjob-backend/db"
	filestorage "smartjob-backend/lib/file-storage"
	profilestore "smartjob-backend/lib/profile/store"
	"smartjob-backend/lib/smtp"
	userstore "smartjob-backend/lib/user/store"
	authutils "smartjob-backend/lib/utils/auth-utils"
	"smartjob-backend/lib/utils/helpers"
	initchecker "smartjob-backend/lib/utils/init-checker"
	"smartjob-backend/lib/utils/lock"
	"smartjob-backend/lib/utils/validate"
	"smartjob-backend/models"
	apimodels "smartjob-backend/models/api"
	authapimodels "smartjob-backend/models/api/auth"
	userapimodels "smartjob-backend/models/api/user"
	dbmodels "smartjob-backend/models/db"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (user userapimodels.UserView, hMsg string, err error)
	Login(request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error)
	Me(userID string) (userapimodels.UserView, error)
	UpdateRecruiterProfile(ctx context.Context, userID string, request userapimodels.RecruiterProfileUpdate, photo *apimodels.UploadedFile) (userapimodels.UserView, error)
}

var Instance Provider

const registerLockWait = 5 * time.Second

// txFunc runs fn against stores bound to one database transaction.
type txFunc func(fn func(users userstore.Provider, profiles profilestore.Provider) error) error

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
		"filestorage.Instance", filestorage.Instance,
	)
	Instance = impl{
		users:      userstore.NewInstance(db.DB),
		profiles:   profilestore.NewInstance(db.DB),
		files:      filestorage.Instance,
		mailer:     smtp.Instance,
		emailFrom:  config.Conf.Smtp.EmailFrom,
		publicHost: config.Conf.App.PublicHost,
		withTx: func(fn func(users userstore.Provider, profiles profilestore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(userstore.NewInstance(tx), profilestore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	users      userstore.Provider
	profiles   profilestore.Provider
	files      filestorage.Provider
	mailer     smtp.Provider
	emailFrom  string
	publicHost string
	withTx     txFunc
}

func (i impl) Register(request authapimodels.RegisterRequest) (user userapimodels.UserView, hMsg string, err error) {
	email := validate.NormalizeEmail(request.Email)
	// the existence check and the insert must not interleave for one email
	locked, err := lock.WithDelay(context.Background(), "register:"+email, registerLockWait, func() error {
		var regErr error
		user, hMsg, regErr = i.register(email, request)
		return regErr
	})
	if err != nil {
		return userapimodels.UserView{}, "", err
	}
	if !locked {
		return userapimodels.UserView{}, "Registration for this email is already in progress", nil
	}
	return user, hMsg, nil
}

func (i impl) register(email string, request authapimodels.RegisterRequest) (userapimodels.UserView, string, error) {
	logger := log.WithField("email", email)
	exist, err := i.users.ExistByEmail(email)
	if err != nil {
		logger.WithError(err).Error("user existence check failed")
		return userapimodels.UserView{}, "", err
	}
	if exist {
		return userapimodels.UserView{}, "User with this email already exists", nil
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return userapimodels.UserView{}, "", err
	}
	rec := dbmodels.User{
		Password:    hash,
		Name:        strings.TrimSpace(request.Name),
		Email:       email,
		Role:        models.RecruiterRole,
		CompanyName: strings.TrimSpace(request.CompanyName),
		IsActive:    true,
	}
	err = i.withTx(func(users userstore.Provider, profiles profilestore.Provider) error {
		userID, err := users.Create(rec)
		if err != nil {
			return errors.Wrap(err, "user not created")
		}
		rec.ID = userID
		_, err = profiles.Create(dbmodels.Profile{UserID: userID})
		if err != nil {
			return errors.Wrap(err, "user profile not created")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("user registration failed")
		return userapimodels.UserView{}, "", err
	}
	i.sendWelcome(rec)
	return rec.ToModel(""), "", nil
}

func (i impl) sendWelcome(user dbmodels.User) {
	if i.mailer == nil || !i.mailer.IsConfigured() {
		return
	}
	message := fmt.Sprintf("Hello %s,\n\nyour recruiter account for %s is ready. Sign in with %s to start posting jobs.",
		user.Name, user.CompanyName, user.Email)
	err := i.mailer.SendEMail(i.emailFrom, user.Email, message, "Welcome")
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Warn("welcome email not sent")
	}
}

func (i impl) Login(request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	email := validate.NormalizeEmail(request.Email)
	user, err := i.users.FindByEmail(email)
	if err != nil {
		log.WithField("email", email).WithError(err).Error("user lookup failed")
		return nil, err
	}
	if user == nil || !user.IsActive || !authutils.CheckPassword(user.Password, request.Password) {
		return nil, ErrInvalidCredentials
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "token not issued")
	}
	err = i.users.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Warn("last login not saved")
	}
	return &authapimodels.LoginResponse{
		Token: token,
		Role:  user.Role,
		User:  i.toView(*user),
	}, nil
}

func (i impl) Me(userID string) (userapimodels.UserView, error) {
	user, err := i.users.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("user lookup failed")
		return userapimodels.UserView{}, err
	}
	if user == nil {
		return userapimodels.UserView{}, ErrUserNotFound
	}
	return i.toView(*user), nil
}

func (i impl) UpdateRecruiterProfile(ctx context.Context, userID string, request userapimodels.RecruiterProfileUpdate, photo *apimodels.UploadedFile) (userapimodels.UserView, error) {
	logger := log.WithField("user_id", userID)
	user, err := i.users.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return userapimodels.UserView{}, err
	}
	if user == nil {
		return userapimodels.UserView{}, ErrUserNotFound
	}
	userUpd := map[string]interface{}{}
	if request.Name != nil {
		userUpd["name"] = strings.TrimSpace(*request.Name)
	}
	if request.CompanyName != nil {
		userUpd["company_name"] = strings.TrimSpace(*request.CompanyName)
	}
	profileUpd := map[string]interface{}{}
	if request.PhoneNumber != nil {
		profileUpd["phone_number"] = strings.TrimSpace(*request.PhoneNumber)
	}
	if request.Location != nil {
		profileUpd["location"] = strings.TrimSpace(*request.Location)
	}
	oldPhotoID, photoID := "", ""
	if photo != nil {
		photoID, err = i.files.Upload(ctx, photo.Body, dbmodels.UploadFileInfo{
			OwnerID:     userID,
			FileName:    photo.FileName,
			FileType:    dbmodels.UserProfilePhoto,
			ContentType: photo.ContentType,
		})
		if err != nil {
			logger.WithError(err).Error("profile photo not uploaded")
			return userapimodels.UserView{}, err
		}
		profileUpd["photo_file_id"] = photoID
		if user.Profile != nil {
			oldPhotoID = user.Profile.PhotoFileID
		}
	}
	err = i.withTx(func(users userstore.Provider, profiles profilestore.Provider) error {
		if err := users.Update(userID, userUpd); err != nil {
			return errors.Wrap(err, "user not updated")
		}
		if len(profileUpd) == 0 {
			return nil
		}
		if user.Profile == nil {
			rec := dbmodels.Profile{UserID: userID}
			profileID, err := profiles.Create(rec)
			if err != nil {
				return errors.Wrap(err, "user profile not created")
			}
			return profiles.Update(profileID, profileUpd)
		}
		return profiles.Update(user.Profile.ID, profileUpd)
	})
	if err != nil {
		logger.WithError(err).Error("recruiter profile update failed")
		if photoID != "" {
			if delErr := i.files.Delete(ctx, photoID); delErr != nil {
				logger.WithError(delErr).Warn("orphan profile photo not removed")
			}
		}
		return userapimodels.UserView{}, err
	}
	if oldPhotoID != "" {
		if err := i.files.Delete(ctx, oldPhotoID); err != nil {
			logger.WithError(err).Warn("previous profile photo not removed")
		}
	}
	return i.Me(userID)
}

func (i impl) toView(user dbmodels.User) userapimodels.UserView {
	avatarUrl := ""
	if user.Profile != nil {
		avatarUrl = helpers.ProfilePhotoUrl(i.publicHost, user.Profile.ID)
	}
	return user.ToModel(avatarUrl)
}
