package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	apimodels "smartjob-backend/models/api"
)

// listAll requests path page by page until a short page comes back.
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	result := []T{}
	query.Set("limit", strconv.Itoa(apimodels.MaxPageLimit))
	for page := 1; ; page++ {
		query.Set("page", strconv.Itoa(page))
		list := []T{}
		if err := c.Do(ctx, http.MethodGet, path+"?"+query.Encode(), nil, &list); err != nil {
			return nil, err
		}
		result = append(result, list...)
		if len(list) < apimodels.MaxPageLimit {
			return result, nil
		}
	}
}
