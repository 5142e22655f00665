package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeFile     FieldType = "file"
	FieldTypeTextarea FieldType = "textarea"
)

func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeFile, FieldTypeTextarea:
		return true
	}
	return false
}

// FormField is one collectible column of the admission form. The id is stable
// once assigned; removing the field never purges values stored under it.
type FormField struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// FieldList is the ordered form schema, stored as a JSON column on the config
// row. Insertion order is display order.
type FieldList []FormField

func (l FieldList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FieldList) Scan(src any) error {
	var b []byte
	switch s := src.(type) {
	case []byte:
		b = s
	case string:
		b = []byte(s)
	case nil:
		*l = FieldList{}
		return nil
	default:
		return errors.New("unsupported source type for field list")
	}
	if len(b) == 0 {
		*l = FieldList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// FindField returns the field with the given id and whether it exists.
func (l FieldList) FindField(id string) (FormField, bool) {
	for _, f := range l {
		if f.ID == id {
			return f, true
		}
	}
	return FormField{}, false
}

// CheckUnique returns ErrInvalidField when two fields share an id. Duplicate
// ids are a configuration error, rejected before the schema is persisted.
func (l FieldList) CheckUnique() error {
	seen := make(map[string]struct{}, len(l))
	for _, f := range l {
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: duplicate field id %q", ErrInvalidField, f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}

// AddField appends a new field to the schema and returns the updated copy.
// An empty label is rejected. When def.ID is blank an id is derived from the
// label, with a numeric suffix when the slug is already taken.
func AddField(fields FieldList, def FormField) (FieldList, error) {
	def.Label = strings.TrimSpace(def.Label)
	if def.Label == "" {
		return nil, fmt.Errorf("%w: label is required", ErrInvalidField)
	}
	if def.Type == "" {
		def.Type = FieldTypeText
	}
	if !ValidFieldType(def.Type) {
		return nil, fmt.Errorf("%w: unknown field type %q", ErrInvalidField, def.Type)
	}

	def.ID = strings.TrimSpace(def.ID)
	if def.ID == "" {
		def.ID = generateFieldID(fields, def.Label)
	} else if _, exists := fields.FindField(def.ID); exists {
		return nil, fmt.Errorf("%w: duplicate field id %q", ErrInvalidField, def.ID)
	}

	out := make(FieldList, 0, len(fields)+1)
	out = append(out, fields...)
	out = append(out, def)
	return out, nil
}

// RemoveField returns the schema without the given field. Values already
// stored under the id are left alone in existing applications.
func RemoveField(fields FieldList, id string) (FieldList, error) {
	if _, exists := fields.FindField(id); !exists {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	out := make(FieldList, 0, len(fields)-1)
	for _, f := range fields {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out, nil
}

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// generateFieldID derives a stable id from the label; collisions with the
// current schema get an increasing numeric suffix.
func generateFieldID(fields FieldList, label string) string {
	base := nonAlphaNum.ReplaceAllString(strings.ToLower(label), "")
	if base == "" {
		base = "field"
	}
	id := base
	for n := 2; ; n++ {
		if _, taken := fields.FindField(id); !taken {
			return id
		}
		id = fmt.Sprintf("%s%d", base, n)
	}
}

// AppConfig is the single staff-managed configuration row: the form schema,
// the registration gate, and the external sync target (spreadsheet id).
type AppConfig struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SheetURL         string    `gorm:"type:text" json:"sheet_url"`
	RegistrationOpen bool      `gorm:"not null;default:true" json:"registration_open"`
	FormFields       FieldList `gorm:"type:jsonb;not null;default:'[]'" json:"form_fields"`
	gorm.Model
}

// DefaultFormFields is the schema seeded on first boot.
func DefaultFormFields() FieldList {
	return FieldList{
		{ID: "nik", Label: "NIK Calon Siswa", Type: FieldTypeNumber, Required: true, Placeholder: "16 digit NIK"},
		{ID: "fullName", Label: "Nama Lengkap", Type: FieldTypeText, Required: true, Placeholder: "Sesuai Ijazah"},
		{ID: "birthPlace", Label: "Tempat Lahir", Type: FieldTypeText, Required: true, Placeholder: "Kota Kelahiran"},
		{ID: "birthDate", Label: "Tanggal Lahir", Type: FieldTypeDate, Required: true},
		{ID: "gender", Label: "Jenis Kelamin", Type: FieldTypeText, Required: true, Placeholder: "Laki-laki / Perempuan"},
		{ID: "address", Label: "Alamat Lengkap", Type: FieldTypeTextarea, Required: true, Placeholder: "Jl. ..."},
		{ID: "fatherName", Label: "Nama Ayah", Type: FieldTypeText, Required: true},
		{ID: "motherName", Label: "Nama Ibu", Type: FieldTypeText, Required: true},
		{ID: "phone", Label: "Nomor WhatsApp", Type: FieldTypeNumber, Required: true, Placeholder: "08..."},
		{ID: "kkFile", Label: "Scan Kartu Keluarga", Type: FieldTypeFile, Required: true},
		{ID: "photoFile", Label: "Pas Foto (3x4)", Type: FieldTypeFile, Required: true},
	}
}
