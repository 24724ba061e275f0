package entity

import "errors"

// ErrorKind classifies a failed provider call
type ErrorKind string

const (
	ErrorNotFound         ErrorKind = "NOT_FOUND"
	ErrorUnauthorized     ErrorKind = "UNAUTHORIZED"
	ErrorRateLimited      ErrorKind = "RATE_LIMITED"
	ErrorNetworkOrUnknown ErrorKind = "NETWORK_OR_UNKNOWN"
)

// FetchError is a provider failure carrying the user-facing message and the query to retry
type FetchError struct {
	Kind    ErrorKind `json:"kind"`
	Status  int       `json:"status,omitempty"`
	Message string    `json:"message"`
	Query   string    `json:"query,omitempty"`
	Cause   error     `json:"-"`
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// AsFetchError finds a FetchError in err's chain
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
