// Package checkdigit implements the ISO 7064 check character systems: the
// pure recurrence used by the explicit modulus systems, the hybrid
// recurrence used when the modulus is one above the radix, and the resolver
// that maps character sets onto them.
package checkdigit

import (
	"strings"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
)

// Calculate appends check character(s) to value, selecting the system from
// the character set size and digit mode. Pure systems are chosen whenever
// the resolved modulus differs from radix+1, hybrid otherwise.
func Calculate(value string, alphabet domain.Alphabet, doubleDigit bool) (string, error) {
	params, err := Resolve(alphabet.Size(), doubleDigit)
	if err != nil {
		return "", err
	}

	if params.Modulus != params.Radix+1 {
		return CalculatePure(value, params.Radix, params.Modulus, alphabet, doubleDigit)
	}
	return CalculateHybrid(value, alphabet)
}

// Verify reports whether value ends in check character(s) consistent with
// the rest of it. It recomputes over the prefix and compares against the
// uppercased input; any calculation failure reads as invalid, never as an
// error.
func Verify(value string, alphabet domain.Alphabet, doubleDigit bool) bool {
	prefix, ok := splitCheck(value, doubleDigit)
	if !ok {
		return false
	}

	full, err := Calculate(prefix, alphabet, doubleDigit)
	if err != nil {
		return false
	}
	return full == strings.ToUpper(value)
}

// VerifyPure is Verify for an explicit (radix, modulus) pair.
func VerifyPure(value string, radix, modulus int, alphabet domain.Alphabet, doubleDigit bool) bool {
	prefix, ok := splitCheck(value, doubleDigit)
	if !ok {
		return false
	}

	full, err := CalculatePure(prefix, radix, modulus, alphabet, doubleDigit)
	if err != nil {
		return false
	}
	return full == strings.ToUpper(value)
}

// splitCheck strips the trailing check characters. Values no longer than
// the check length cannot be valid.
func splitCheck(value string, doubleDigit bool) (string, bool) {
	checkLen := 1
	if doubleDigit {
		checkLen = 2
	}
	if len(value) <= checkLen {
		return "", false
	}
	return value[:len(value)-checkLen], true
}
