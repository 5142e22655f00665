package domain

import "strings"

// MaxEncodedFileSize is the ceiling for one file field's payload in its
// encoded (data URL) form. Payloads exactly at the limit pass; one byte over
// is rejected at ingestion before the value reaches the application.
const MaxEncodedFileSize = 2 * 1024 * 1024

// ValidateForSubmission checks a value map against the current schema.
// Every required field must carry a non-empty value; for file fields the
// presence of an encoded payload counts. All missing fields are collected in
// one pass so the applicant sees the complete list. Draft saves never call
// this.
func ValidateForSubmission(fields FieldList, values FieldValues) error {
	var missing []MissingField
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if strings.TrimSpace(values[f.ID]) == "" {
			missing = append(missing, MissingField{ID: f.ID, Label: f.Label})
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}
