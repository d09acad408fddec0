package seismic

import (
	"fmt"
	"strings"
)

// ValidationError represents an input validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// UnsupportedInputError reports input outside the domain of the code formulas.
type UnsupportedInputError struct {
	Message string
	Cause   error
}

func (e *UnsupportedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unsupported input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("unsupported input: %s", e.Message)
}

func (e *UnsupportedInputError) Unwrap() error {
	return e.Cause
}

// FieldError is a single schema violation.
type FieldError struct {
	Field   string
	Message string
}

// SchemaError lists the JSON schema violations of an input file.
type SchemaError struct {
	Path   string
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s does not match the input schema:\n", e.Path)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return strings.TrimRight(sb.String(), "\n")
}
