package dto

import "github.com/sekolahdev/admission_service/internal/domain"

type SaveValuesRequest struct {
	Values map[string]string `json:"values"`
}

// ApplicationResponse is the applicant's own view: current data plus the
// status-dependent card the dashboard renders.
type ApplicationResponse struct {
	ID             uint               `json:"id"`
	FullName       string             `json:"full_name"`
	SubmissionDate string             `json:"submission_date"`
	Status         string             `json:"status"`
	AdminNote      string             `json:"admin_note,omitempty"`
	Values         domain.FieldValues `json:"values"`
	Card           domain.StatusCard  `json:"card"`
}

// FieldValueView pairs one schema field with the stored value for the staff
// detail view. File fields carry the declared media kind instead of echoing
// the payload size back.
type FieldValueView struct {
	Field     domain.FormField `json:"field"`
	Value     string           `json:"value,omitempty"`
	Present   bool             `json:"present"`
	IsFile    bool             `json:"is_file"`
	MediaKind string           `json:"media_kind,omitempty"`
	IsImage   bool             `json:"is_image,omitempty"`
}

type ApplicationDetailResponse struct {
	ID             uint              `json:"id"`
	UserID         uint              `json:"user_id"`
	FullName       string            `json:"full_name"`
	SubmissionDate string            `json:"submission_date"`
	Status         string            `json:"status"`
	AdminNote      string            `json:"admin_note,omitempty"`
	ReviewedAt     *string           `json:"reviewed_at,omitempty"`
	Fields         []FieldValueView  `json:"fields"`
	Card           domain.StatusCard `json:"card"`
}

type ApplicationSummaryRow struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	FullName       string `json:"full_name"`
	SubmissionDate string `json:"submission_date"`
	Status         string `json:"status"`
}
