// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] driven by `validate` struct tags.
// Violations are reported under their JSON field names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &requestValidator{validate: v}
}

// Validate checks value against its tags. When fields are given only those
// struct fields (Go names) are checked.
func (r *requestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrUnsupportedType
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	for _, field := range fields {
		if _, ok := rv.Type().FieldByName(field); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = r.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}
