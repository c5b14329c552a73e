package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	playground "github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// Rules validates tagged structs and reports violations into a Validator.
// Field errors are keyed by the field's json name.
//
// A Rules value must not be modified once it is in use; Struct is safe for
// concurrent use.
type Rules struct {
	validate   *playground.Validate
	translator ut.Translator
}

// NewRules constructs Rules with English messages.
func NewRules() (*Rules, error) {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, fmt.Errorf("failed to register translations: %w", err)
	}

	return &Rules{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// MustNewRules is like NewRules but panics on error.
func MustNewRules() *Rules {
	r, err := NewRules()
	if err != nil {
		panic(err)
	}
	return r
}

// RegisterPattern adds a string tag that passes when the field matches rx.
// message may use {0} for the field name.
func (r *Rules) RegisterPattern(tag string, rx *regexp.Regexp, message string) error {
	err := r.validate.RegisterValidation(tag, func(fl playground.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return Matches(fl.Field().String(), rx)
	})
	if err != nil {
		return fmt.Errorf("failed to register %q: %w", tag, err)
	}

	err = r.validate.RegisterTranslation(tag, r.translator,
		func(trans ut.Translator) error {
			return trans.Add(tag, message, true)
		},
		func(trans ut.Translator, fe playground.FieldError) string {
			t, err := trans.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
	if err != nil {
		return fmt.Errorf("failed to register %q translation: %w", tag, err)
	}

	return nil
}

// Struct validates data and adds one error per failing field to v.
// The returned error is non-nil only when data cannot be validated at all.
func (r *Rules) Struct(v *Validator, data any) error {
	err := r.validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		v.AddError(fe.Field(), fe.Translate(r.translator))
	}

	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
