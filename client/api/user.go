package api

import (
	"context"
	"net/http"

	authapimodels "smartjob-backend/models/api/auth"
	userapimodels "smartjob-backend/models/api/user"
)

const (
	registerPath         = "/user/register"
	loginPath            = "/user/login"
	mePath               = "/user/me"
	recruiterProfilePath = "/user/recruiter/profile"
)

func (c *Client) Register(ctx context.Context, request authapimodels.RegisterRequest) (userapimodels.UserView, error) {
	user := userapimodels.UserView{}
	err := c.Do(ctx, http.MethodPost, registerPath, request, &user)
	return user, err
}

func (c *Client) Login(ctx context.Context, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	resp := new(authapimodels.LoginResponse)
	if err := c.Do(ctx, http.MethodPost, loginPath, request, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Me(ctx context.Context) (userapimodels.UserView, error) {
	user := userapimodels.UserView{}
	err := c.Do(ctx, http.MethodGet, mePath, nil, &user)
	return user, err
}

// UpdateRecruiterProfile sends the non-nil fields of request and the optional photo.
func (c *Client) UpdateRecruiterProfile(ctx context.Context, request userapimodels.RecruiterProfileUpdate, photo *File) (userapimodels.UserView, error) {
	fields := map[string]string{}
	setField(fields, "name", request.Name)
	setField(fields, "company_name", request.CompanyName)
	setField(fields, "phone_number", request.PhoneNumber)
	setField(fields, "location", request.Location)
	user := userapimodels.UserView{}
	err := c.DoMultipart(ctx, http.MethodPut, recruiterProfilePath, fields, attachment("photo", photo), &user)
	return user, err
}

func setField(fields map[string]string, name string, value *string) {
	if value != nil {
		fields[name] = *value
	}
}

func attachment(field string, file *File) []File {
	if file == nil {
		return nil
	}
	result := *file
	result.Field = field
	return []File{result}
}
