package domain

import "testing"

func TestValidateForSubmissionCollectsAllMissing(t *testing.T) {
	fields := DefaultFormFields()
	values := FieldValues{
		"nik":      "3201234567890001",
		"fullName": "Budi Santoso",
		"phone":    "081234567890",
	}

	err := ValidateForSubmission(fields, values)
	if err == nil {
		t.Fatal("expected missing-fields error, got nil")
	}

	mf, ok := AsMissingFields(err)
	if !ok {
		t.Fatalf("error = %v, want MissingFieldsError", err)
	}
	if len(mf.Fields) != 8 {
		t.Fatalf("got %d missing fields, want 8: %v", len(mf.Fields), mf.Fields)
	}

	// reported in schema order, with labels the applicant can act on
	if mf.Fields[0].ID != "birthPlace" || mf.Fields[0].Label != "Tempat Lahir" {
		t.Errorf("first missing = %+v, want birthPlace / Tempat Lahir", mf.Fields[0])
	}
	if last := mf.Fields[len(mf.Fields)-1]; last.ID != "photoFile" {
		t.Errorf("last missing = %+v, want photoFile", last)
	}
}

func TestValidateForSubmissionWhitespaceIsEmpty(t *testing.T) {
	fields := FieldList{
		{ID: "name", Label: "Nama", Type: FieldTypeText, Required: true},
	}
	err := ValidateForSubmission(fields, FieldValues{"name": "   "})
	if _, ok := AsMissingFields(err); !ok {
		t.Fatalf("whitespace-only value should count as missing, got %v", err)
	}
}

func TestValidateForSubmissionIgnoresOptionalFields(t *testing.T) {
	fields := FieldList{
		{ID: "name", Label: "Nama", Type: FieldTypeText, Required: true},
		{ID: "note", Label: "Catatan", Type: FieldTypeTextarea, Required: false},
	}
	if err := ValidateForSubmission(fields, FieldValues{"name": "Budi"}); err != nil {
		t.Fatalf("optional field empty should pass, got %v", err)
	}
}

func TestValidateForSubmissionCompleteValues(t *testing.T) {
	fields := DefaultFormFields()
	values := FieldValues{}
	for _, f := range fields {
		values[f.ID] = "x"
	}
	if err := ValidateForSubmission(fields, values); err != nil {
		t.Fatalf("complete values should pass, got %v", err)
	}
}
