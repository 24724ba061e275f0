package model

// ErrorResponse is the body of every failed request. Retry holds the query to repeat, when there is one.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Retry string `json:"retry,omitempty"`
}
