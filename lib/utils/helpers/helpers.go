package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	apimodels "smartjob-backend/models/api"
)

func GetFileContentType(file *multipart.FileHeader) string {
	contentType := file.Header.Get(fiber.HeaderContentType)
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	buffer, err := file.Open()
	if err != nil {
		return "application/octet-stream"
	}
	defer buffer.Close()
	head := make([]byte, 512)
	n, _ := buffer.Read(head)
	return http.DetectContentType(head[:n])
}

// ReadFormFile returns nil without error when the form has no such file.
func ReadFormFile(ctx *fiber.Ctx, field string) (*apimodels.UploadedFile, error) {
	if !strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	file, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	buffer, err := file.Open()
	if err != nil {
		return nil, errors.Wrap(err, "uploaded file open failed")
	}
	defer buffer.Close()
	body, err := io.ReadAll(buffer)
	if err != nil {
		return nil, errors.Wrap(err, "uploaded file read failed")
	}
	return &apimodels.UploadedFile{
		FileName:    file.Filename,
		ContentType: GetFileContentType(file),
		Body:        body,
	}, nil
}

func ProfilePhotoUrl(host, profileID string) string {
	return fmt.Sprintf("%s/api/profiles/%s/photo", strings.TrimRight(host, "/"), profileID)
}

func ApplicantResumeUrl(host, applicantID string) string {
	return fmt.Sprintf("%s/api/applicants/%s/resume", strings.TrimRight(host, "/"), applicantID)
}
