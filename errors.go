package conf

import "errors"

// Validation failures surfaced by typed accessors and the duration parser.
// All are immediate and synchronous; a failed operation never mutates the
// store. Wrap sites add context with fmt.Errorf("%w: ...").
var (
	// ErrTypeMismatch indicates a typed accessor or setter was invoked with
	// a value whose runtime type disagrees with the entry's default type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingDefault indicates a duration accessor was called on an entry
	// with no stored value and a nil default.
	ErrMissingDefault = errors.New("missing default value")

	// ErrInvalidFormat indicates a duration string that does not match the
	// grammar, or carries an unrecognized unit suffix.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidValue indicates a duration string that parses syntactically
	// but yields a negative magnitude.
	ErrInvalidValue = errors.New("invalid value")
)
