package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/address-search/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [SearchValidator.Validate] to restrict validation.
const (
	FieldTerm  = "Term"
	FieldLimit = "Limit"
)

// SearchValidator validates [models.SearchQuery] and [models.Address] values.
type SearchValidator struct {
	validate *validator.Validate
}

func NewSearchValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation("searchterm", validSearchTerm)

	return &SearchValidator{validate: v}
}

// Validate implements [Validator]. Optional fields restrict a SearchQuery
// check to the named fields ([FieldTerm], [FieldLimit]).
func (v *SearchValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchQuery:
		return v.validateSearchQuery(ctx, value, fields...)
	case *models.SearchQuery:
		return v.validateSearchQuery(ctx, *value, fields...)

	case models.Address:
		return v.validateAddress(ctx, value)
	case *models.Address:
		return v.validateAddress(ctx, *value)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *SearchValidator) validateSearchQuery(ctx context.Context, q models.SearchQuery, fields ...string) error {
	q.Term = strings.TrimSpace(q.Term)

	for _, f := range fields {
		if f != FieldTerm && f != FieldLimit {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, q)
	} else {
		err = v.validate.StructPartialCtx(ctx, q, fields...)
	}

	return mapSearchQueryError(err)
}

func mapSearchQueryError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Field() {
	case FieldTerm:
		switch fe.Tag() {
		case "required", "min":
			return ErrTermTooShort
		case "max":
			return ErrTermTooLong
		default:
			return ErrInvalidTerm
		}
	case FieldLimit:
		return ErrInvalidLimit
	}

	return err
}

func (v *SearchValidator) validateAddress(ctx context.Context, a models.Address) error {
	if err := v.validate.StructCtx(ctx, a); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return nil
}

// validSearchTerm rejects control characters and terms without any letter
// or digit.
func validSearchTerm(fl validator.FieldLevel) bool {
	term := fl.Field().String()

	hasAlnum := false
	for _, r := range term {
		if unicode.IsControl(r) {
			return false
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasAlnum = true
		}
	}
	return hasAlnum
}
