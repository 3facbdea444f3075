package conv

import (
	"errors"
	"reflect"
	"strings"
)

var (
	// ErrUnsupported is the cause of a failure when no strategy converts the pair
	ErrUnsupported = errors.New("unsupported conversion")
	// ErrInvalidDestination reports a nil or non-pointer destination
	ErrInvalidDestination = errors.New("destination must be a non-nil pointer")
)

// Error represents a conversion failure
type Error struct {
	// Source is the source type name
	Source string
	// Target is the destination type name or virtual tag name
	Target string
	// Tag is the virtual tag the conversion was routed through
	Tag   Tag
	Cause error
}

// Error returns error message
func (e *Error) Error() string {
	builder := strings.Builder{}
	builder.WriteString("conv: cannot convert ")
	builder.WriteString(e.Source)
	if e.Tag != None && e.Tag.String() != e.Target {
		builder.WriteString(" (")
		builder.WriteString(e.Tag.String())
		builder.WriteString(")")
	}
	builder.WriteString(" to ")
	builder.WriteString(e.Target)
	if e.Cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Cause.Error())
	}
	return builder.String()
}

// Unwrap returns the nested cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsError returns true if err carries a conversion failure
func IsError(err error) bool {
	var convErr *Error
	return errors.As(err, &convErr)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

func newError(source, target string, tag Tag, cause error) error {
	if cause == nil {
		return nil
	}
	if convErr, ok := cause.(*Error); ok {
		return convErr
	}
	return &Error{Source: source, Target: target, Tag: tag, Cause: cause}
}
