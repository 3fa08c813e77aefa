package validator

import (
	"slices"
	"strings"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

// Error lists every invalid field; Fields maps the field name to its problem.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func Validate(v Validator) error {
	if fields := v.Validate(); len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
