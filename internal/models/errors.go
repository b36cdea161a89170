package models

import "fmt"

type DocumentError string

func (e DocumentError) Error() string {
	return string(e)
}

const (
	ErrMissingField        DocumentError = "missing field"
	ErrMalformedFareCode   DocumentError = "malformed fare code"
	ErrMalformedTimestamp  DocumentError = "malformed timestamp"
	ErrMalformedCharge     DocumentError = "malformed charge amount"
	ErrVariantMismatch     DocumentError = "variants disagree on search options"
	ErrEmptyInput          DocumentError = "no variants to rank"
	ErrDivideByZero        DocumentError = "weighted score undefined: sum is zero"
	ErrInconsistentOptions DocumentError = "option present on one side only"
	ErrMalformedDocument   DocumentError = "malformed document"
)

// FieldError attaches the offending element path or value to one of the
// DocumentError kinds.
type FieldError struct {
	Kind   DocumentError
	Field  string
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Detail)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func NewFieldError(kind DocumentError, field, detail string) *FieldError {
	return &FieldError{Kind: kind, Field: field, Detail: detail}
}
