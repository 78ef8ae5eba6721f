package checkoutControllers

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned when the request body is malformed or names
// products that cannot be priced.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// UpstreamDataError wraps a failed read of the authoritative project rows.
type UpstreamDataError struct {
	Err error
}

func (e *UpstreamDataError) Error() string {
	return fmt.Sprintf("could not load products: %v", e.Err)
}

func (e *UpstreamDataError) Unwrap() error { return e.Err }

// PaymentProviderError wraps a rejected or failed session creation.
type PaymentProviderError struct {
	Err error
}

func (e *PaymentProviderError) Error() string {
	return fmt.Sprintf("could not create payment session: %v", e.Err)
}

func (e *PaymentProviderError) Unwrap() error { return e.Err }
