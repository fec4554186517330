package errors

// ErrorCode identifies an application error class in API responses and logs.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002
	ErrorCode_NOT_FOUND        ErrorCode = 1003

	// Transcript upload
	ErrorCode_TRANSCRIPT_MISSING_FILE      ErrorCode = 2000
	ErrorCode_TRANSCRIPT_INVALID_FILE_TYPE ErrorCode = 2001
	ErrorCode_TRANSCRIPT_INVALID_ENCODING  ErrorCode = 2002
	ErrorCode_TRANSCRIPT_EMPTY             ErrorCode = 2003

	// AI analysis
	ErrorCode_AI_ANALYSIS_FAILED ErrorCode = 3000

	// Email delivery
	ErrorCode_EMAIL_NOT_CONFIGURED  ErrorCode = 4000
	ErrorCode_EMAIL_DELIVERY_FAILED ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                  "UNSPECIFIED",
	ErrorCode_INTERNAL:                     "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:             "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:              "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:                    "NOT_FOUND",
	ErrorCode_TRANSCRIPT_MISSING_FILE:      "TRANSCRIPT_MISSING_FILE",
	ErrorCode_TRANSCRIPT_INVALID_FILE_TYPE: "TRANSCRIPT_INVALID_FILE_TYPE",
	ErrorCode_TRANSCRIPT_INVALID_ENCODING:  "TRANSCRIPT_INVALID_ENCODING",
	ErrorCode_TRANSCRIPT_EMPTY:             "TRANSCRIPT_EMPTY",
	ErrorCode_AI_ANALYSIS_FAILED:           "AI_ANALYSIS_FAILED",
	ErrorCode_EMAIL_NOT_CONFIGURED:         "EMAIL_NOT_CONFIGURED",
	ErrorCode_EMAIL_DELIVERY_FAILED:        "EMAIL_DELIVERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies and zap fields.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
