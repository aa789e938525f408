// Package validation checks request payloads against their struct tags and
// converts failures into field errors that clients can act on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single rejected input
// Loc is the path to the offending value, e.g. ["body", "precio"]
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Errors is a list of field errors that satisfies error
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps a configured validator instance
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON name
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Body validates a decoded request body
// Returns Errors when any field is rejected
func (v *Validator) Body(payload interface{}) error {
	return v.check("body", payload)
}

// Struct validates any struct and reports fields without a location prefix
func (v *Validator) Struct(s interface{}) error {
	return v.check("", s)
}

func (v *Validator) check(loc string, s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		path := []string{fe.Field()}
		if loc != "" {
			path = append([]string{loc}, path...)
		}
		typ, msg := describe(fe)
		out = append(out, FieldError{Loc: path, Msg: msg, Type: typ})
	}
	return out
}

// describe maps a validator tag to an error type and message
func describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "missing", "Field required"
	case "min":
		if fe.Kind() == reflect.String {
			unit := "characters"
			if fe.Param() == "1" {
				unit = "character"
			}
			return "string_too_short", fmt.Sprintf("String should have at least %s %s", fe.Param(), unit)
		}
		return "greater_than_equal", fmt.Sprintf("Input should be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return "string_too_long", fmt.Sprintf("String should have at most %s characters", fe.Param())
		}
		return "less_than_equal", fmt.Sprintf("Input should be less than or equal to %s", fe.Param())
	case "gt":
		return "greater_than", fmt.Sprintf("Input should be greater than %s", fe.Param())
	case "oneof":
		return "enum", fmt.Sprintf("Input should be one of: %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fe.Tag(), fmt.Sprintf("failed on %s=%s", fe.Tag(), fe.Param())
		}
		return fe.Tag(), fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// Single builds an Errors value holding one field error
func Single(errType, msg string, loc ...string) Errors {
	return Errors{{Loc: loc, Msg: msg, Type: errType}}
}
