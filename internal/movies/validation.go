package movies

import (
	"strconv"
	"strings"
)

// Validator decides whether a draft may be added or saved.
type Validator interface {
	Validate(d Draft) error
}

// RequiredFields rejects a draft with any empty field.
type RequiredFields struct{}

// Validate implements Validator
func (RequiredFields) Validate(d Draft) error {
	var missing []Field
	for _, f := range Fields {
		if d.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// NumericFields applies RequiredFields and also requires year and rating to
// parse as numbers.
type NumericFields struct{}

// Validate implements Validator
func (NumericFields) Validate(d Draft) error {
	if err := (RequiredFields{}).Validate(d); err != nil {
		return err
	}
	var invalid []Field
	for _, f := range []Field{FieldYear, FieldRating} {
		if _, err := strconv.ParseFloat(strings.TrimSpace(d.Get(f)), 64); err != nil {
			invalid = append(invalid, f)
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{Invalid: invalid}
	}
	return nil
}

// ValidatorFor returns NumericFields when strict is set, RequiredFields otherwise.
func ValidatorFor(strict bool) Validator {
	if strict {
		return NumericFields{}
	}
	return RequiredFields{}
}
