package models

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/yyvfuruta/formcheck/internal/validator"
)

// VersionRX matches versions made of numbers separated by single dots.
var VersionRX = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

var formRules = newFormRules()

func newFormRules() *validator.Rules {
	r := validator.MustNewRules()
	if err := r.RegisterPattern("formversion", VersionRX, "{0} must be numbers separated by dots"); err != nil {
		panic(err)
	}
	return r
}

// Form is a named, versioned template of clinical data-entry fields.
type Form struct {
	ID           int         `json:"id,omitempty" yaml:"id,omitempty"`
	UUID         uuid.UUID   `json:"uuid" yaml:"uuid"`
	Name         string      `json:"name" yaml:"name" validate:"required,max=50"`
	Version      string      `json:"version" yaml:"version" validate:"required,max=50,formversion"`
	Description  string      `json:"description,omitempty" yaml:"description,omitempty" validate:"max=255"`
	Published    bool        `json:"published" yaml:"published"`
	Retired      bool        `json:"retired" yaml:"retired"`
	RetireReason string      `json:"retireReason,omitempty" yaml:"retireReason,omitempty" validate:"required_if=Retired true,max=50"`
	FormFields   []FormField `json:"formFields,omitempty" yaml:"formFields,omitempty"`
}

// FormField assigns a clinical field to a position on a form.
type FormField struct {
	UUID        uuid.UUID `json:"uuid" yaml:"uuid"`
	FieldNumber int       `json:"fieldNumber,omitempty" yaml:"fieldNumber,omitempty"`
	FieldPart   string    `json:"fieldPart,omitempty" yaml:"fieldPart,omitempty"`
	PageNumber  int       `json:"pageNumber,omitempty" yaml:"pageNumber,omitempty"`
	MinOccurs   int       `json:"minOccurs,omitempty" yaml:"minOccurs,omitempty"`
	MaxOccurs   int       `json:"maxOccurs,omitempty" yaml:"maxOccurs,omitempty"`
	Required    bool      `json:"required" yaml:"required"`
	SortWeight  float64   `json:"sortWeight,omitempty" yaml:"sortWeight,omitempty"`
}

func NewForm() *Form {
	return &Form{UUID: uuid.New()}
}

// AddFormField appends ff, giving it a uuid if it has none.
func (f *Form) AddFormField(ff FormField) {
	if ff.UUID == uuid.Nil {
		ff.UUID = uuid.New()
	}
	f.FormFields = append(f.FormFields, ff)
}

// OrderedFormFields returns a copy of the form's field assignments in the
// order they were added. The result is never nil.
func (f *Form) OrderedFormFields() []FormField {
	fields := make([]FormField, len(f.FormFields))
	copy(fields, f.FormFields)
	return fields
}

// ValidateForm adds an error to v for every field of form that breaks a rule.
// Rules on different fields are checked independently. A nil form is
// validated as an empty one.
func ValidateForm(v *validator.Validator, form *Form) {
	if form == nil {
		form = &Form{}
	}

	if err := formRules.Struct(v, form); err != nil {
		v.AddError("form", err.Error())
	}
}
