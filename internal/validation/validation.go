// Package validation wraps go-playground/validator with English
// translations so handlers can return field-level error lists.
package validation

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator validates request payloads against their struct tags.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New creates a Validator with English messages. It panics if the
// translator cannot be registered, which only happens on programmer error.
func New() *Validator {
	english := en.New()
	uni := ut.New(english, english)

	translator, found := uni.GetTranslator("en")
	if !found {
		panic("validation: english translator not found")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic("validation: " + err.Error())
	}

	return &Validator{
		validate:   validate,
		translator: translator,
	}
}

// Struct validates the given payload. On failure it returns the list of
// field-level errors; the boolean reports whether validation passed.
func (v *Validator) Struct(payload any) ([]FieldError, bool) {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil, true
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "", Message: err.Error()}}, false
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(v.translator),
		})
	}

	return fieldErrs, false
}
