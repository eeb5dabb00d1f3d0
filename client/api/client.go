// Package api is the HTTP client of the SmartJob REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Error is a non-2xx reply of the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed with status %v", e.StatusCode)
	}
	return e.Message
}

// Message returns the server-provided message carried by err, or fallback when the
// reply had none or the request never reached the server.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// File is an attachment sent in a multipart request.
type File struct {
	Field       string
	FileName    string
	ContentType string
	Body        []byte
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	host   string
	client *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient builds a client for the API served at host, e.g. http://localhost:6000/api.
func NewClient(host string, timeout time.Duration) *Client {
	return &Client{
		host: strings.TrimRight(host, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do sends body as JSON and decodes the data field of the reply into out.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	var requestBody string
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "request serialization failed")
		}
		requestBody = string(raw)
		reader = bytes.NewReader(raw)
	}
	uri := c.host + path
	r, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return errors.Wrap(err, "request build failed")
	}
	if body != nil {
		r.Header.Add("Content-Type", "application/json")
	}
	logger := log.
		WithField("api_request", uri).
		WithField("method", method)
	if requestBody != "" && !strings.Contains(path, "/user/") {
		logger = logger.WithField("request_body", requestBody)
	}
	return c.sendRequest(logger, r, out)
}

// DoMultipart sends fields and the optional files as multipart/form-data.
func (c *Client) DoMultipart(ctx context.Context, method, path string, fields map[string]string, files []File, out interface{}) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return errors.Wrap(err, "multipart field write failed")
		}
	}
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.FileName))
		contentType := file.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(file.Body)
		}
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return errors.Wrap(err, "multipart file part create failed")
		}
		if _, err = part.Write(file.Body); err != nil {
			return errors.Wrap(err, "multipart file write failed")
		}
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "multipart close failed")
	}
	uri := c.host + path
	r, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return errors.Wrap(err, "request build failed")
	}
	r.Header.Add("Content-Type", writer.FormDataContentType())
	logger := log.
		WithField("api_request", uri).
		WithField("method", method).
		WithField("files", len(files))
	return c.sendRequest(logger, r, out)
}

func (c *Client) sendRequest(logger *log.Entry, r *http.Request, out interface{}) error {
	r.Header.Add("Accept", "application/json")
	if token := c.Token(); token != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", token))
	}
	response, err := c.client.Do(r)
	if err != nil {
		logger.WithError(err).Warn("api request failed")
		return errors.Wrap(err, "api request failed")
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "api response read failed")
	}

	resp := envelope{}
	parseErr := json.Unmarshal(responseBody, &resp)
	if response.StatusCode < 200 || response.StatusCode >= 300 || resp.Status == "fail" {
		logger.
			WithField("status_code", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Warn("api replied with error")
		if parseErr != nil {
			return &Error{StatusCode: response.StatusCode}
		}
		return &Error{StatusCode: response.StatusCode, Message: resp.Message}
	}
	if parseErr != nil {
		return errors.Wrap(parseErr, "api response deserialization failed")
	}
	if out == nil || len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil
	}
	if err = json.Unmarshal(resp.Data, out); err != nil {
		return errors.Wrap(err, "api response data deserialization failed")
	}
	return nil
}
