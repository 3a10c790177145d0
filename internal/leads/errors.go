package leads

import (
	"errors"
	"fmt"
)

// Stages reported by DownstreamError.
const (
	StageSheetAppend = "sheet_append"
	StageEmailSend   = "email_send"
)

var (
	// ErrMissingRequired is returned when name, email or phone is empty
	ErrMissingRequired = errors.New("name, email and phone are required")

	// ErrInvalidBody is returned when the request body is not a lead JSON object
	ErrInvalidBody = errors.New("invalid request body")
)

// DownstreamError records which collaborator failed. Callers only ever see a
// generic failure; Stage and Err are for operators.
type DownstreamError struct {
	Stage string
	Err   error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("leads: %s failed: %v", e.Stage, e.Err)
}

func (e *DownstreamError) Unwrap() error {
	return e.Err
}
