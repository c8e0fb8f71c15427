package api

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Structured error codes the backend returns on ad-creation failures.
// The same codes are produced locally by pre-submission image validation
// so callers handle both paths uniformly.
const (
	CodeFileTooLarge    = "FILE_TOO_LARGE"
	CodeTooManyFiles    = "TOO_MANY_FILES"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeUploadError     = "UPLOAD_ERROR"
)

// Error is a structured API failure: a machine-readable code plus a
// human-readable message. Use errors.As to retrieve it from wrapped chains.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}
