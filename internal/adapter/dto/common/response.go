package common

import apperrors "github.com/johnquangdev/meeting-summary/errors"

// ErrorResponse is the body of every non-2xx response. Detail carries the
// client-facing message.
type ErrorResponse struct {
	Detail  string              `json:"detail"`
	Code    apperrors.ErrorCode `json:"code,omitempty" swaggertype:"string"`
	Details map[string]string   `json:"details,omitempty"`
}

// StatusResponse is returned by the liveness endpoints
type StatusResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment,omitempty"`
}

// MessageResponse represents a plain success message
type MessageResponse struct {
	Message string `json:"message"`
}
