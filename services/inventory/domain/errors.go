package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrPartNotFound indicates no part is registered under the requested id.
	ErrPartNotFound = errors.New("part not found")

	// ErrProductNotFound indicates no product is registered under the requested id.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyName indicates a required name field is empty or whitespace.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrInvalidRange indicates min/max violate 0 < min <= max.
	ErrInvalidRange = errors.New("min must be greater than 0 and not exceed max")

	// ErrStockOutOfBounds indicates stock is outside [min, max].
	ErrStockOutOfBounds = errors.New("inventory must be between min and max")

	// ErrNotANumber indicates a numeric field could not be parsed.
	ErrNotANumber = errors.New("value is not a number")

	// ErrNoSelection indicates an operation was invoked without a target record.
	ErrNoSelection = errors.New("no record selected")

	// ErrDeleteBlocked indicates a product still has associated parts.
	ErrDeleteBlocked = errors.New("product has associated parts")

	// ErrInvalidPrice indicates a negative price.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrUnknownSource indicates a part source other than in-house or outsourced.
	ErrUnknownSource = errors.New("unknown part source")
)

// ErrorKind classifies user-facing failures.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindEmptyName
	KindInvalidRange
	KindStockOutOfBounds
	KindNotANumber
	KindNoSelection
	KindDeleteBlocked
	KindInvalidPrice
	KindUnknownSource
)

var kindSentinels = map[ErrorKind]error{
	KindEmptyName:        ErrEmptyName,
	KindInvalidRange:     ErrInvalidRange,
	KindStockOutOfBounds: ErrStockOutOfBounds,
	KindNotANumber:       ErrNotANumber,
	KindNoSelection:      ErrNoSelection,
	KindDeleteBlocked:    ErrDeleteBlocked,
	KindInvalidPrice:     ErrInvalidPrice,
	KindUnknownSource:    ErrUnknownSource,
}

// String returns the snake_case wire name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindEmptyName:
		return "empty_name"
	case KindInvalidRange:
		return "invalid_range"
	case KindStockOutOfBounds:
		return "stock_out_of_bounds"
	case KindNotANumber:
		return "not_a_number"
	case KindNoSelection:
		return "no_selection"
	case KindDeleteBlocked:
		return "delete_blocked"
	case KindInvalidPrice:
		return "invalid_price"
	case KindUnknownSource:
		return "unknown_source"
	default:
		return "unknown"
	}
}

// ValidationError reports which field failed which rule.
// It unwraps to the sentinel for its Kind.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Value string
}

// NewValidationError builds a ValidationError for field with the offending raw value.
func NewValidationError(kind ErrorKind, field, value string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value}
}

func (e *ValidationError) Error() string {
	sentinel := e.Unwrap()
	if sentinel == nil {
		return fmt.Sprintf("%s: invalid value %q", e.Field, e.Value)
	}
	if e.Field == "" {
		return sentinel.Error()
	}
	if e.Kind == KindNotANumber {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, sentinel, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, sentinel)
}

func (e *ValidationError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// KindOf returns the ErrorKind carried by err, matching either a
// ValidationError or a bare sentinel anywhere in the chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}

// FieldOf returns the offending field name, or "" when err carries none.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
