package apiv1

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	userhandler "smartjob-backend/lib/user"
	"smartjob-backend/models"
	apimodels "smartjob-backend/models/api"
	authapimodels "smartjob-backend/models/api/auth"
	userapimodels "smartjob-backend/models/api/user"
)

type fakeUserHandler struct {
	emails     map[string]bool
	lastUpdate userapimodels.RecruiterProfileUpdate
	lastPhoto  *apimodels.UploadedFile
}

func (h *fakeUserHandler) Register(request authapimodels.RegisterRequest) (userapimodels.UserView, string, error) {
	if h.emails[request.Email] {
		return userapimodels.UserView{}, "User with this email already exists", nil
	}
	h.emails[request.Email] = true
	return userapimodels.UserView{ID: "user-1", Name: request.Name, Email: request.Email, Role: models.RecruiterRole}, "", nil
}

func (h *fakeUserHandler) Login(request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	if request.Password != "TestPass@123" {
		return nil, userhandler.ErrInvalidCredentials
	}
	return &authapimodels.LoginResponse{Token: "token", Role: models.RecruiterRole}, nil
}

func (h *fakeUserHandler) Me(userID string) (userapimodels.UserView, error) {
	return userapimodels.UserView{ID: userID}, nil
}

func (h *fakeUserHandler) UpdateRecruiterProfile(ctx context.Context, userID string, request userapimodels.RecruiterProfileUpdate, photo *apimodels.UploadedFile) (userapimodels.UserView, error) {
	h.lastUpdate = request
	h.lastPhoto = photo
	return userapimodels.UserView{ID: userID}, nil
}

func TestUserApi(t *testing.T) {
	handler := &fakeUserHandler{emails: map[string]bool{}}
	userhandler.Instance = handler
	app := testApp(t, InitUserApiRouters)

	t.Run(`register`, func(t *testing.T) {
		body := `{"name":"Test","email":"test@example.com","password":"TestPass@123","company_name":"Acme"}`
		status, resp := doRequest(t, app, http.MethodPost, "/api/user/register", body, "")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, apimodels.StatusSuccess, resp.Status)

		status, resp = doRequest(t, app, http.MethodPost, "/api/user/register", body, "")
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "User with this email already exists", resp.Message)
	})

	t.Run(`register with weak password never reaches the handler`, func(t *testing.T) {
		body := `{"name":"Weak","email":"weak@example.com","password":"abc12345","company_name":"Acme"}`
		status, resp := doRequest(t, app, http.MethodPost, "/api/user/register", body, "")
		require.Equal(t, http.StatusBadRequest, status)
		require.Contains(t, resp.Message, "at least 8 characters")
		require.False(t, handler.emails["weak@example.com"])
	})

	t.Run(`login`, func(t *testing.T) {
		status, resp := doRequest(t, app, http.MethodPost, "/api/user/login", `{"email":"test@example.com","password":"TestPass@123"}`, "")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "token", resp.Data.(map[string]interface{})["token"])

		status, resp = doRequest(t, app, http.MethodPost, "/api/user/login", `{"email":"test@example.com","password":"Wrong@1234"}`, "")
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run(`me requires token`, func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodGet, "/api/user/me", "", "")
		require.Equal(t, http.StatusUnauthorized, status)

		status, resp := doRequest(t, app, http.MethodGet, "/api/user/me", "", authHeader(t, "user-1", models.RecruiterRole))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "user-1", resp.Data.(map[string]interface{})["id"])
	})

	t.Run(`recruiter profile multipart`, func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.Nil(t, writer.WriteField("name", "New Name"))
		require.Nil(t, writer.WriteField("location", "Pune"))
		part, err := writer.CreateFormFile("photo", "me.png")
		require.Nil(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.Nil(t, err)
		require.Nil(t, writer.Close())

		req := httptest.NewRequest(http.MethodPut, "/api/user/recruiter/profile", body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(fiber.HeaderAuthorization, authHeader(t, "user-1", models.RecruiterRole))
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.NotNil(t, handler.lastUpdate.Name)
		require.Equal(t, "New Name", *handler.lastUpdate.Name)
		require.Equal(t, "Pune", *handler.lastUpdate.Location)
		require.Nil(t, handler.lastUpdate.CompanyName)
		require.NotNil(t, handler.lastPhoto)
		require.Equal(t, "me.png", handler.lastPhoto.FileName)
	})
}
