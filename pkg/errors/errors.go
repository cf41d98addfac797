package errors

import "errors"

// The failure modes of check digit computation. Calculation code wraps
// these with fmt.Errorf("%w: ...") context; callers test identity with Is.
var (
	// ErrInvalidCharacterSet reports a character set the resolver cannot
	// map to a supported radix, or one that is structurally unusable
	// (empty, repeated characters).
	ErrInvalidCharacterSet = errors.New("invalid character set")

	// ErrEmptyValue reports a calculation over an empty input value.
	ErrEmptyValue = errors.New("empty value")

	// ErrInvalidCharacter reports an input character that is not part of
	// the character set in use.
	ErrInvalidCharacter = errors.New("character not in character set")

	// ErrInvalidParameters reports explicit radix and modulus parameters
	// that cannot form a working system.
	ErrInvalidParameters = errors.New("invalid radix/modulus parameters")

	// ErrCheckCharacterRange reports a computed check value with no
	// representation in the character set. Only reachable through the
	// explicit parameter entry points.
	ErrCheckCharacterRange = errors.New("check character outside character set")

	// ErrUnknownDesignation reports a system designation that names none of
	// the known ISO 7064 systems.
	ErrUnknownDesignation = errors.New("unknown system designation")
)

// Is reports whether any error in err's chain matches target. It forwards
// to the standard library so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target any) bool {
	return errors.As(err, target)
}
