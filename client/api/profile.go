package api

import (
	"context"
	"fmt"
	"net/http"

	profileapimodels "smartjob-backend/models/api/profile"
)

const (
	profilesPath = "/profiles"
	profilePath  = "/profiles/%v"
)

func (c *Client) CreateProfile(ctx context.Context, data profileapimodels.ProfileData, photo *File) (profileapimodels.ProfileView, error) {
	fields := map[string]string{
		"full_name":    data.FullName,
		"company_name": data.CompanyName,
		"phone_number": data.PhoneNumber,
		"location":     data.Location,
	}
	profile := profileapimodels.ProfileView{}
	err := c.DoMultipart(ctx, http.MethodPost, profilesPath, fields, attachment("photo", photo), &profile)
	return profile, err
}

func (c *Client) GetProfile(ctx context.Context, id string) (profileapimodels.ProfileView, error) {
	profile := profileapimodels.ProfileView{}
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf(profilePath, id), nil, &profile)
	return profile, err
}

func (c *Client) UpdateProfile(ctx context.Context, id string, patch profileapimodels.ProfilePatch, photo *File) (profileapimodels.ProfileView, error) {
	fields := map[string]string{}
	setField(fields, "full_name", patch.FullName)
	setField(fields, "company_name", patch.CompanyName)
	setField(fields, "phone_number", patch.PhoneNumber)
	setField(fields, "location", patch.Location)
	profile := profileapimodels.ProfileView{}
	err := c.DoMultipart(ctx, http.MethodPut, fmt.Sprintf(profilePath, id), fields, attachment("photo", photo), &profile)
	return profile, err
}
