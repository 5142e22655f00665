package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrFieldNotFound        = errors.New("form field not found")
	ErrInvalidField         = errors.New("invalid form field")
	ErrDuplicate            = errors.New("already exists")
	ErrDuplicateApplication = errors.New("owner already has an application")
	ErrPayloadTooLarge      = errors.New("file payload exceeds size limit")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrApplicationLocked    = errors.New("application is not editable in its current status")
	ErrRegistrationClosed   = errors.New("registration is closed")
	ErrPersistence          = errors.New("persistence failure")
)

// MissingField identifies one required field the applicant left empty.
type MissingField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MissingFieldsError reports every required field missing from a submission,
// not just the first one, so the applicant gets the full list at once.
type MissingFieldsError struct {
	Fields []MissingField
}

func (e *MissingFieldsError) Error() string {
	labels := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		labels = append(labels, f.Label)
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(labels, ", "))
}

// AsMissingFields unwraps err into a MissingFieldsError if it is one.
func AsMissingFields(err error) (*MissingFieldsError, bool) {
	var mf *MissingFieldsError
	if errors.As(err, &mf) {
		return mf, true
	}
	return nil, false
}
