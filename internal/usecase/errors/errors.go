package errors

import "errors"

// Transcript errors
var (
	ErrInvalidFileType = errors.New("transcript must be a text/plain file")
	ErrInvalidEncoding = errors.New("transcript is not valid UTF-8")
	ErrEmptyTranscript = errors.New("transcript is empty")
)

// Analysis errors
var (
	ErrAnalysisFailed = errors.New("transcript analysis failed")
)

// Email errors
var (
	ErrEmailNotConfigured = errors.New("email credentials are not configured")
	ErrDeliveryFailed     = errors.New("email delivery failed")
)

// DeliveryError wraps an SMTP-layer failure. Its message is the SMTP error
// text alone so callers can surface it verbatim.
type DeliveryError struct {
	Cause error
}

func (e *DeliveryError) Error() string {
	return e.Cause.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrDeliveryFailed) match any DeliveryError.
func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}
