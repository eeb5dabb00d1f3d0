package apiv1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"smartjob-backend/config"
	jobhandler "smartjob-backend/lib/job"
	authutils "smartjob-backend/lib/utils/auth-utils"
	"smartjob-backend/models"
	apimodels "smartjob-backend/models/api"
	jobapimodels "smartjob-backend/models/api/job"
)

type fakeJobHandler struct {
	jobs        map[string]jobapimodels.JobView
	lastScope   string
	lastCreator string
}

func (h *fakeJobHandler) List(recruiterID string, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	h.lastScope = recruiterID
	list := []jobapimodels.JobView{}
	for _, job := range h.jobs {
		list = append(list, job)
	}
	return list, int64(len(list)), nil
}

func (h *fakeJobHandler) Create(recruiterID string, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	h.lastCreator = recruiterID
	job := jobapimodels.JobView{ID: "5b3c6c3e-08f5-4c43-9b55-2c1a1d0c0d01", JobData: data, RecruiterID: recruiterID}
	h.jobs[job.ID] = job
	return job, nil
}

func (h *fakeJobHandler) GetByID(recruiterID, id string) (jobapimodels.JobView, error) {
	job, ok := h.jobs[id]
	if !ok {
		return jobapimodels.JobView{}, jobhandler.ErrJobNotFound
	}
	return job, nil
}

func (h *fakeJobHandler) Update(recruiterID, id string, patch jobapimodels.JobPatch) (jobapimodels.JobView, string, error) {
	job, ok := h.jobs[id]
	if !ok {
		return jobapimodels.JobView{}, "", jobhandler.ErrJobNotFound
	}
	job = patch.Apply(job)
	h.jobs[id] = job
	return job, "", nil
}

func (h *fakeJobHandler) Delete(recruiterID, id string) error {
	if _, ok := h.jobs[id]; !ok {
		return jobhandler.ErrJobNotFound
	}
	delete(h.jobs, id)
	return nil
}

func (h *fakeJobHandler) GetPdf(recruiterID, id string) ([]byte, string, error) {
	return []byte("%PDF-1.3"), "job.pdf", nil
}

func testApp(t *testing.T, routers ...func(app fiber.Router)) *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	app := fiber.New()
	api := fiber.New()
	app.Mount("/api", api)
	for _, initRouters := range routers {
		initRouters(api)
	}
	return app
}

func authHeader(t *testing.T, userID string, role models.UserRole) string {
	token, err := authutils.GetToken(userID, "Test", role)
	require.Nil(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, method, target, body, auth string) (int, apimodels.Response) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	defer resp.Body.Close()
	result := apimodels.Response{}
	raw, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	if len(raw) != 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.Nil(t, json.Unmarshal(raw, &result))
	}
	return resp.StatusCode, result
}

func TestJobApi(t *testing.T) {
	handler := &fakeJobHandler{jobs: map[string]jobapimodels.JobView{}}
	jobhandler.Instance = handler
	app := testApp(t, InitJobApiRouters)
	recruiter := authHeader(t, "rec-1", models.RecruiterRole)

	t.Run(`token required`, func(t *testing.T) {
		status, resp := doRequest(t, app, http.MethodGet, "/api/jobs", "", "")
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, apimodels.StatusFail, resp.Status)
	})

	t.Run(`create validates the body`, func(t *testing.T) {
		status, resp := doRequest(t, app, http.MethodPost, "/api/jobs", `{"title":""}`, recruiter)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Job title is required", resp.Message)
	})

	t.Run(`create on both paths`, func(t *testing.T) {
		body := `{"title":"Backend Developer","description":"APIs","qualification":"Go","salary_min":1,"salary_max":2,
			"job_type":"Full-time","experience_level":"Senior","location":"Pune","skills":["Go"]}`
		status, resp := doRequest(t, app, http.MethodPost, "/api/jobs/create", body, recruiter)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, apimodels.StatusSuccess, resp.Status)
		require.Equal(t, "rec-1", handler.lastCreator)
		data := resp.Data.(map[string]interface{})
		require.Equal(t, "Backend Developer", data["title"])
	})

	t.Run(`list scope`, func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodGet, "/api/jobs/all", "", recruiter)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "rec-1", handler.lastScope)

		admin := authHeader(t, "admin-1", models.AdminRole)
		status, _ = doRequest(t, app, http.MethodGet, "/api/jobs", "", admin)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "", handler.lastScope)
	})

	t.Run(`update and delete`, func(t *testing.T) {
		id := "5b3c6c3e-08f5-4c43-9b55-2c1a1d0c0d01"
		status, resp := doRequest(t, app, http.MethodPut, "/api/jobs/"+id, `{"location":"Remote"}`, recruiter)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "Remote", resp.Data.(map[string]interface{})["location"])

		status, resp = doRequest(t, app, http.MethodDelete, "/api/jobs/"+id, "", recruiter)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, id, resp.Data)

		status, resp = doRequest(t, app, http.MethodGet, "/api/jobs/"+id, "", recruiter)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "Job not found", resp.Message)
	})

	t.Run(`invalid id`, func(t *testing.T) {
		status, resp := doRequest(t, app, http.MethodGet, "/api/jobs/not-a-uuid", "", recruiter)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Invalid record id", resp.Message)
	})

	t.Run(`pdf`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/jobs/5b3c6c3e-08f5-4c43-9b55-2c1a1d0c0d01/pdf", nil)
		req.Header.Set(fiber.HeaderAuthorization, recruiter)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	})
}
