package amber

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNotStruct indicates the wrapped type is not a struct and no shape
	// can be derived for it.
	ErrNotStruct = errors.New("not a struct type")

	// ErrNoField indicates a member selector did not resolve to an exported
	// field of the wrapped type.
	ErrNoField = errors.New("no such field")

	// ErrConvert indicates a value could not be converted to a member's
	// declared type.
	ErrConvert = errors.New("conversion failed")

	// ErrMarshal indicates the codec failed to marshal an enclosed value.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// ShapeError represents a shape resolution failure: the wrapped type has no
// usable shape, or a selector names a member the shape does not contain.
type ShapeError struct {
	Err    error  // Underlying sentinel error (ErrNotStruct, ErrNoField)
	Type   string // Wrapped type name
	Member string // Member selector that failed, empty for type-level errors
}

func (e *ShapeError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("%s: %q has no assignable member %q", e.Err.Error(), e.Type, e.Member)
	}
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Type)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// ConvertError represents a failed value conversion during a set operation.
type ConvertError struct {
	Type   string // Wrapped type name
	Member string // Member being assigned
	From   string // Type of the supplied value
	To     string // Member's declared type
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("conversion failed: cannot assign %s to member %q (%s) of %q", e.From, e.Member, e.To, e.Type)
}

func (e *ConvertError) Unwrap() error {
	return ErrConvert
}

// CodecError represents a marshal/unmarshal failure inside a bridge.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newShapeError creates a ShapeError for resolution failures.
func newShapeError(sentinel error, typeName, member string) error {
	return &ShapeError{
		Err:    sentinel,
		Type:   typeName,
		Member: member,
	}
}

// newConvertError creates a ConvertError for failed assignments.
func newConvertError(typeName, member, from, to string) error {
	return &ConvertError{
		Type:   typeName,
		Member: member,
		From:   from,
		To:     to,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
