package checkdigit

import (
	"fmt"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

// Double check digit systems use a modulus fixed by the standard, not
// derived from the radix: MOD 97-10, MOD 251-16, MOD 661-26, MOD 1271-36.
var doubleDigitModulus = map[int]int{
	10: 97,
	16: 251,
	26: 661,
	36: 1271,
}

// Resolve maps a character set size and digit mode to the (radix, modulus)
// pair of the matching ISO 7064 system.
//
// The radix starts as the set size and the modulus one above it. Double
// digit mode replaces the modulus from the fixed table. In single digit
// mode the sizes 11 and 37 denote the supplementary character systems
// MOD 11-2 and MOD 37-2: the extra character ("X", "*") only ever appears
// in the check position, and both systems run on radix 2.
//
// Returns ErrInvalidCharacterSet, wrapped in a ValidationError, when the
// final radix is not one of 2, 10, 16, 26 or 36. Double digit mode with a
// set of 11 or 37 characters lands there too: no such system exists.
func Resolve(size int, doubleDigit bool) (domain.Params, error) {
	params := domain.Params{Radix: size, Modulus: size + 1}

	if doubleDigit {
		if modulus, ok := doubleDigitModulus[size]; ok {
			params.Modulus = modulus
		}
	} else if size == 11 {
		params = domain.Params{Radix: 2, Modulus: 11}
	} else if size == 37 {
		params = domain.Params{Radix: 2, Modulus: 37}
	}

	switch params.Radix {
	case 2, 10, 16, 26, 36:
		return params, nil
	default:
		return domain.Params{}, errors.NewValidationError(
			"characterSet", size,
			fmt.Errorf("%w: no system for a set of %d characters", errors.ErrInvalidCharacterSet, size),
		)
	}
}
