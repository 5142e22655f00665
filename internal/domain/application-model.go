package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusNew           ApplicationStatus = "new"
	StatusPendingReview ApplicationStatus = "pending_review"
	StatusAccepted      ApplicationStatus = "accepted"
	StatusNeedsRevision ApplicationStatus = "needs_revision"
	StatusRejected      ApplicationStatus = "rejected"
)

// ValidStatus reports whether s is one of the five lifecycle statuses.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusNew, StatusPendingReview, StatusAccepted, StatusNeedsRevision, StatusRejected:
		return true
	}
	return false
}

// FieldValues maps FormField ids to collected values. Scalar fields hold the
// raw string, file fields hold the encoded payload (data URL). Keys are not
// required to cover the schema, and keys of removed fields stay as they are.
// Stored as a JSON column.
type FieldValues map[string]string

func (v FieldValues) Value() (driver.Value, error) {
	if v == nil {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (v *FieldValues) Scan(src any) error {
	var b []byte
	switch s := src.(type) {
	case []byte:
		b = s
	case string:
		b = []byte(s)
	case nil:
		*v = FieldValues{}
		return nil
	default:
		return errors.New("unsupported source type for field values")
	}
	if len(b) == 0 {
		*v = FieldValues{}
		return nil
	}
	return json.Unmarshal(b, v)
}

type Application struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName       string            `gorm:"not null" json:"full_name"`
	SubmissionDate time.Time         `gorm:"not null" json:"submission_date"`
	Status         ApplicationStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	AdminNote      string            `gorm:"type:text" json:"admin_note,omitempty"`
	Values         FieldValues       `gorm:"type:jsonb;not null;default:'{}'" json:"values"`

	ReviewedBy *uint      `gorm:"index" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	gorm.Model
}
