package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"smartjob-backend/client/api"
	"smartjob-backend/client/storage"
	"smartjob-backend/lib/utils/validate"
	"smartjob-backend/models"
	authapimodels "smartjob-backend/models/api/auth"
	userapimodels "smartjob-backend/models/api/user"
)

var (
	ErrNoAccount       = errors.New("no account found with this email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmailTaken      = errors.New("User with this email already exists")
)

type remote struct {
	client *api.Client
}

// NewRemote is the session backend served by the REST API.
func NewRemote(client *api.Client) Backend {
	return &remote{client: client}
}

func (r *remote) Register(ctx context.Context, request authapimodels.RegisterRequest) (*authapimodels.LoginResponse, error) {
	_, err := r.client.Register(ctx, request)
	return nil, err
}

func (r *remote) Login(ctx context.Context, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	return r.client.Login(ctx, request)
}

func (r *remote) UpdateRecruiterProfile(ctx context.Context, userID string, request userapimodels.RecruiterProfileUpdate, photo *api.File) (userapimodels.UserView, error) {
	return r.client.UpdateRecruiterProfile(ctx, request, photo)
}

func (r *remote) SetToken(token string) {
	r.client.SetToken(token)
}

// registeredUser is an account kept under the registeredUsers key.
type registeredUser struct {
	userapimodels.UserView
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type local struct {
	storage storage.Storage
	mu      sync.Mutex
}

// NewLocal keeps the accounts in s. Passwords are stored as bcrypt hashes.
func NewLocal(s storage.Storage) Backend {
	return &local{storage: s}
}

func (l *local) Register(ctx context.Context, request authapimodels.RegisterRequest) (*authapimodels.LoginResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	users := l.load()
	email := validate.NormalizeEmail(request.Email)
	if _, ok := findByEmail(users, email); ok {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "password hash failed")
	}
	user := registeredUser{
		UserView: userapimodels.UserView{
			ID:          uuid.New().String(),
			Name:        strings.TrimSpace(request.Name),
			Email:       email,
			Role:        models.RecruiterRole,
			CompanyName: strings.TrimSpace(request.CompanyName),
		},
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	users = append(users, user)
	if err = storage.SaveJSON(l.storage, storage.KeyRegisteredUsers, users); err != nil {
		return nil, err
	}
	return newLogin(user), nil
}

func (l *local) Login(ctx context.Context, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	users := l.load()
	index, ok := findByEmail(users, validate.NormalizeEmail(request.Email))
	if !ok {
		return nil, ErrNoAccount
	}
	err := bcrypt.CompareHashAndPassword([]byte(users[index].PasswordHash), []byte(request.Password))
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return newLogin(users[index]), nil
}

func (l *local) UpdateRecruiterProfile(ctx context.Context, userID string, request userapimodels.RecruiterProfileUpdate, photo *api.File) (userapimodels.UserView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	users := l.load()
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		user := &users[i].UserView
		if request.Name != nil {
			user.Name = strings.TrimSpace(*request.Name)
		}
		if request.CompanyName != nil {
			user.CompanyName = strings.TrimSpace(*request.CompanyName)
		}
		if request.PhoneNumber != nil {
			user.PhoneNumber = *request.PhoneNumber
		}
		if request.Location != nil {
			user.Location = *request.Location
		}
		if photo != nil {
			user.Avatar = dataURL(photo)
		}
		if err := storage.SaveJSON(l.storage, storage.KeyRegisteredUsers, users); err != nil {
			return userapimodels.UserView{}, err
		}
		return *user, nil
	}
	return userapimodels.UserView{}, ErrNoAccount
}

func (l *local) SetToken(token string) {}

func (l *local) load() []registeredUser {
	users := []registeredUser{}
	if !storage.LoadJSON(l.storage, storage.KeyRegisteredUsers, &users) {
		return []registeredUser{}
	}
	return users
}

func findByEmail(users []registeredUser, email string) (int, bool) {
	for i := range users {
		if validate.NormalizeEmail(users[i].Email) == email {
			return i, true
		}
	}
	return 0, false
}

func newLogin(user registeredUser) *authapimodels.LoginResponse {
	return &authapimodels.LoginResponse{
		Token: uuid.New().String(),
		Role:  user.Role,
		User:  user.UserView,
	}
}

func dataURL(file *api.File) string {
	contentType := file.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(file.Body)
	}
	return fmt.Sprintf("data:%v;base64,%v", contentType, base64.StdEncoding.EncodeToString(file.Body))
}
