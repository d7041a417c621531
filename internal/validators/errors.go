// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not structs or
	// pointers to structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrUnknownField is returned when a field scope names a field the value
	// does not have.
	ErrUnknownField = errors.New("unknown field for validation")
	// ErrInvalidInput wraps every rule violation found in a value.
	ErrInvalidInput = errors.New("invalid input")
)
