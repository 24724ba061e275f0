package api

import (
	"net/http"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/msg"
)

// NewFetchError maps a provider status to the error taxonomy and its user-facing message.
// status is 0 for transport failures.
func NewFetchError(status int, providerMessage string, query string, cause error) *entity.FetchError {
	fetchErr := &entity.FetchError{Status: status, Query: query, Cause: cause}

	switch status {
	case http.StatusNotFound:
		fetchErr.Kind = entity.ErrorNotFound
		fetchErr.Message = msg.GetMessage("weather.error.not-found", query)
	case http.StatusUnauthorized:
		fetchErr.Kind = entity.ErrorUnauthorized
		fetchErr.Message = msg.GetMessage("weather.error.unauthorized")
	case http.StatusTooManyRequests:
		fetchErr.Kind = entity.ErrorRateLimited
		fetchErr.Message = msg.GetMessage("weather.error.rate-limited")
	default:
		fetchErr.Kind = entity.ErrorNetworkOrUnknown
		fetchErr.Message = providerMessage
		if fetchErr.Message == "" {
			fetchErr.Message = msg.GetMessage("weather.error.generic")
		}
	}

	return fetchErr
}
