// Package validate provides input validation utilities for human-time.
//
// All functions leverage the go-playground/validator library so flag and
// field checks share the same tags and error behavior.
//
// VALIDATION UTILITIES:
//   - Field validation: any built-in validator tag against a single value
//   - String validation: required field and non-empty string checking
//   - Choice validation: membership in a fixed set of options
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// ValidateField validates a single value against validator tags without
// requiring a struct definition.
//
// Example: ValidateField("json", "required,oneof=text json")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateOneOf validates that value is one of options. Options must not
// contain spaces since they become a oneof tag.
func ValidateOneOf(value, fieldName string, options ...string) error {
	tag := "required,oneof=" + strings.Join(options, " ")
	if err := ValidateField(value, tag); err != nil {
		return fmt.Errorf("invalid %s '%s' - valid: %s", fieldName, value, strings.Join(options, ", "))
	}
	return nil
}

// ValidateUint parses s as a non-negative 64-bit integer. Signs, spaces,
// decimals and values above the uint64 range are rejected.
func ValidateUint(s, fieldName string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'", fieldName, s)
	}
	return v, nil
}
