package domain

import (
	"errors"
	"testing"
)

func TestAddFieldDerivesID(t *testing.T) {
	fields, err := AddField(nil, FormField{Label: "Asal Sekolah", Type: FieldTypeText})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(fields))
	}
	if fields[0].ID != "asalsekolah" {
		t.Errorf("derived id = %q, want %q", fields[0].ID, "asalsekolah")
	}
}

func TestAddFieldDisambiguatesCollisions(t *testing.T) {
	fields := FieldList{{ID: "asalsekolah", Label: "Asal Sekolah", Type: FieldTypeText}}

	fields, err := AddField(fields, FormField{Label: "Asal Sekolah!", Type: FieldTypeText})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := fields[len(fields)-1].ID; got != "asalsekolah2" {
		t.Errorf("second id = %q, want %q", got, "asalsekolah2")
	}

	fields, err = AddField(fields, FormField{Label: "ASAL SEKOLAH", Type: FieldTypeText})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := fields[len(fields)-1].ID; got != "asalsekolah3" {
		t.Errorf("third id = %q, want %q", got, "asalsekolah3")
	}
}

func TestAddFieldRejectsEmptyLabel(t *testing.T) {
	if _, err := AddField(nil, FormField{Label: "   "}); !errors.Is(err, ErrInvalidField) {
		t.Errorf("error = %v, want ErrInvalidField", err)
	}
}

func TestAddFieldRejectsDuplicateExplicitID(t *testing.T) {
	fields := FieldList{{ID: "nik", Label: "NIK", Type: FieldTypeNumber}}
	_, err := AddField(fields, FormField{ID: "nik", Label: "NIK Lagi", Type: FieldTypeNumber})
	if !errors.Is(err, ErrInvalidField) {
		t.Errorf("error = %v, want ErrInvalidField", err)
	}
}

func TestAddFieldRejectsUnknownType(t *testing.T) {
	_, err := AddField(nil, FormField{Label: "Umur", Type: FieldType("integer")})
	if !errors.Is(err, ErrInvalidField) {
		t.Errorf("error = %v, want ErrInvalidField", err)
	}
}

func TestAddFieldDefaultsToText(t *testing.T) {
	fields, err := AddField(nil, FormField{Label: "Hobi"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if fields[0].Type != FieldTypeText {
		t.Errorf("type = %q, want %q", fields[0].Type, FieldTypeText)
	}
}

func TestAddFieldNonLatinLabelFallsBack(t *testing.T) {
	fields, err := AddField(nil, FormField{Label: "日本語"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if fields[0].ID != "field" {
		t.Errorf("id = %q, want %q", fields[0].ID, "field")
	}
}

func TestRemoveField(t *testing.T) {
	fields := FieldList{
		{ID: "a", Label: "A", Type: FieldTypeText},
		{ID: "b", Label: "B", Type: FieldTypeText},
		{ID: "c", Label: "C", Type: FieldTypeText},
	}

	out, err := RemoveField(fields, "b")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Errorf("got %v, want [a c]", out)
	}

	if _, err := RemoveField(fields, "z"); !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("error = %v, want ErrFieldNotFound", err)
	}
}

func TestCheckUnique(t *testing.T) {
	ok := FieldList{{ID: "a"}, {ID: "b"}}
	if err := ok.CheckUnique(); err != nil {
		t.Errorf("unexpected error %v", err)
	}

	dup := FieldList{{ID: "a"}, {ID: "a"}}
	if err := dup.CheckUnique(); !errors.Is(err, ErrInvalidField) {
		t.Errorf("error = %v, want ErrInvalidField", err)
	}
}

func TestFieldListScanRoundTrip(t *testing.T) {
	in := FieldList{
		{ID: "nik", Label: "NIK Calon Siswa", Type: FieldTypeNumber, Required: true, Placeholder: "16 digit NIK"},
		{ID: "kkFile", Label: "Scan Kartu Keluarga", Type: FieldTypeFile, Required: true},
	}

	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out FieldList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d fields, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("field %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestFieldListScanNil(t *testing.T) {
	var l FieldList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("got %v, want empty list", l)
	}
}

func TestDefaultFormFields(t *testing.T) {
	fields := DefaultFormFields()
	if len(fields) != 11 {
		t.Fatalf("got %d default fields, want 11", len(fields))
	}
	if err := fields.CheckUnique(); err != nil {
		t.Fatalf("default schema has duplicate ids: %v", err)
	}

	fileFields := 0
	for _, f := range fields {
		if !ValidFieldType(f.Type) {
			t.Errorf("field %q has invalid type %q", f.ID, f.Type)
		}
		if !f.Required {
			t.Errorf("field %q should be required", f.ID)
		}
		if f.Type == FieldTypeFile {
			fileFields++
		}
	}
	if fileFields != 2 {
		t.Errorf("got %d file fields, want 2", fileFields)
	}
}
