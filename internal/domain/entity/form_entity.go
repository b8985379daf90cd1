package entity

import "time"

// FieldType enumerates the supported form field types.
type FieldType string

const (
	FieldTypeText   FieldType = "TEXT"
	FieldTypeNumber FieldType = "NUMBER"
	FieldTypeDate   FieldType = "DATE"
	FieldTypeTime   FieldType = "TIME"
)

// ValidFieldType reports whether t is one of the recognized field types.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeTime:
		return true
	}
	return false
}

// Form is a dynamic form definition with an ordered list of fields.
type Form struct {
	ID          string
	Name        string
	Description string
	Fields      []FormField
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type FormField struct {
	ID       string
	FormID   string
	Name     string
	Type     FieldType
	Required bool
}

// FormResponse is one submission against a form. Answers is keyed by
// field id and stored as JSONB.
type FormResponse struct {
	ID        string
	FormID    string
	Answers   map[string]any
	CreatedAt time.Time
}
