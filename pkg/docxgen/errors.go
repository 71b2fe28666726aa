package docxgen

import (
	"errors"
	"fmt"
)

// Error kinds. Every concrete error returned by this package matches exactly
// one of them through errors.Is.
var (
	ErrInvalidFormatValue  = errors.New("invalid format value")
	ErrUnknownOption       = errors.New("unknown option")
	ErrStructuralInvariant = errors.New("structural invariant violation")
	ErrPackaging           = errors.New("packaging error")
)

// FormatValueError reports a malformed enumerant or a non-positive numeric
// attribute.
type FormatValueError struct {
	Attribute string
	Value     interface{}
	Message   string
}

func (e *FormatValueError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid %s value %v: %s", e.Attribute, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s value %v", e.Attribute, e.Value)
}

// Is matches ErrInvalidFormatValue
func (e *FormatValueError) Is(target error) bool {
	return target == ErrInvalidFormatValue
}

// NewFormatValueError creates a new format value error
func NewFormatValueError(attribute string, value interface{}, message string) error {
	return &FormatValueError{
		Attribute: attribute,
		Value:     value,
		Message:   message,
	}
}

// UnknownOptionError reports an option key that the receiving element does
// not recognise.
type UnknownOptionError struct {
	Option string
	Target string
}

func (e *UnknownOptionError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("unknown %s option %q", e.Target, e.Option)
	}
	return fmt.Sprintf("unknown option %q", e.Option)
}

// Is matches ErrUnknownOption
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// StructuralError reports a model that cannot be rendered correctly, such as
// a run that is both subscript and superscript.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural invariant violation: %s", e.Message)
}

// Is matches ErrStructuralInvariant
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructuralInvariant
}

// NewStructuralError creates a new structural error
func NewStructuralError(format string, args ...interface{}) error {
	return &StructuralError{Message: fmt.Sprintf(format, args...)}
}

// PackagingError represents a failure while writing the package to its
// destination
type PackagingError struct {
	Op    string
	Path  string
	Cause error
}

func (e *PackagingError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("packaging error during %s of '%s': %v", e.Op, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("packaging error during %s of '%s'", e.Op, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("packaging error during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("packaging error during %s", e.Op)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}

// Is matches ErrPackaging
func (e *PackagingError) Is(target error) bool {
	return target == ErrPackaging
}

// NewPackagingError creates a new packaging error
func NewPackagingError(op, path string, cause error) error {
	return &PackagingError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// IsPackagingError checks if an error is (or wraps) a packaging error
func IsPackagingError(err error) bool {
	var pe *PackagingError
	return errors.As(err, &pe)
}

// wrapPosition prefixes err with the 1-based position of the failing element
func wrapPosition(kind string, pos int, err error) error {
	return fmt.Errorf("%s %d: %w", kind, pos, err)
}
