// Package validator adapts go-playground/validator to Echo's Validator
// interface and registers the application's custom rules.
package validator

import (
	"regexp"

	domainerrors "taskhub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// usernamePattern restricts usernames to letters, digits, underscores and
// hyphens. Spaces and "@" are excluded so a username can never be mistaken
// for an email address at login.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validator wraps a go-playground validate instance for Echo.
type Validator struct {
	validate *validator.Validate
}

// New builds the validator with the "username" rule registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration can only fail for blank tags or nil funcs, neither of
	// which can happen here.
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Violations surface as a
// VALIDATION_FAILED application error carrying the validator's description.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
