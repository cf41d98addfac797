package checkdigit

import (
	"fmt"
	"strings"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

// CalculatePure computes check characters with the pure ISO 7064 recurrence
// over an explicit (radix, modulus) pair. The value is uppercased, every
// character is mapped to its position in the set, and a running product
//
//	p = ((p + position) * radix) mod modulus
//
// accumulates over the whole value. The check value (modulus - p + 1) mod
// modulus is appended as one character, or in double digit mode as two
// characters via radix decomposition after one extra radix step for the
// second check position.
func CalculatePure(value string, radix, modulus int, alphabet domain.Alphabet, doubleDigit bool) (string, error) {
	if err := ValidateAlphabet(alphabet); err != nil {
		return "", err
	}
	if radix < 1 || modulus <= radix {
		return "", fmt.Errorf("%w: radix %d, modulus %d", errors.ErrInvalidParameters, radix, modulus)
	}
	if value == "" {
		return "", errors.ErrEmptyValue
	}

	upper := strings.ToUpper(value)

	p := 0
	for i := 0; i < len(upper); i++ {
		position := alphabet.Index(upper[i])
		if position < 0 {
			return "", fmt.Errorf("%w: %q at position %d", errors.ErrInvalidCharacter, upper[i], i)
		}
		p = ((p + position) * radix) % modulus
	}
	if doubleDigit {
		p = (p * radix) % modulus
	}

	check := (modulus - p + 1) % modulus

	if doubleDigit {
		second := check % radix
		first := (check - second) / radix
		if first >= alphabet.Size() || second >= alphabet.Size() {
			return "", fmt.Errorf(
				"%w: positions %d and %d in a set of %d",
				errors.ErrCheckCharacterRange, first, second, alphabet.Size(),
			)
		}
		return upper + string(alphabet.Char(first)) + string(alphabet.Char(second)), nil
	}

	if check >= alphabet.Size() {
		return "", fmt.Errorf(
			"%w: position %d in a set of %d",
			errors.ErrCheckCharacterRange, check, alphabet.Size(),
		)
	}
	return upper + string(alphabet.Char(check)), nil
}
