// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"gsync/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request structs using struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the sync-specific tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("synctype", func(fl validator.FieldLevel) bool {
		return entity.SyncType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" failed on '"+fe.Tag()+"'")
	}

	return errors.New(strings.Join(msgs, "; "))
}
