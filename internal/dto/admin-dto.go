package dto

import "github.com/sekolahdev/admission_service/internal/domain"

type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept revision reject" example:"revision"`
	Note     string `json:"note,omitempty" example:"Foto kurang jelas, mohon upload ulang"`
}

type SummaryResponse struct {
	Total         int64 `json:"total"`
	New           int64 `json:"new"`
	PendingReview int64 `json:"pending_review"`
	Accepted      int64 `json:"accepted"`
	NeedsRevision int64 `json:"needs_revision"`
	Rejected      int64 `json:"rejected"`
}

type ConfigResponse struct {
	SheetURL         string           `json:"sheet_url"`
	RegistrationOpen bool             `json:"registration_open"`
	FormFields       domain.FieldList `json:"form_fields"`
}

// ConfigUpdateRequest patches the config row; nil fields are left untouched.
type ConfigUpdateRequest struct {
	SheetURL         *string `json:"sheet_url,omitempty"`
	RegistrationOpen *bool   `json:"registration_open,omitempty"`
}

type FieldInput struct {
	ID          string `json:"id,omitempty"`
	Label       string `json:"label" validate:"required"`
	Type        string `json:"type" example:"text"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
}
