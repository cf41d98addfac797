package checkdigit

import (
	"fmt"
	"strings"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

// CalculateHybrid computes a single check character with the hybrid ISO
// 7064 recurrence (the MOD 11,10 family), alternating between the radix and
// radix+1 moduli. The running position starts at the radix; each character
// adds its set position, reduces by the radix when the sum exceeds it,
// doubles, and reduces by radix+1. The check character sits at
// radix + 1 - position, with the radix itself standing for position zero.
func CalculateHybrid(value string, alphabet domain.Alphabet) (string, error) {
	if err := ValidateAlphabet(alphabet); err != nil {
		return "", err
	}
	if value == "" {
		return "", errors.ErrEmptyValue
	}

	upper := strings.ToUpper(value)
	radix := alphabet.Size()

	pos := radix
	for i := 0; i < len(upper); i++ {
		position := alphabet.Index(upper[i])
		if position < 0 {
			return "", fmt.Errorf("%w: %q at position %d", errors.ErrInvalidCharacter, upper[i], i)
		}

		pos += position
		if pos > radix {
			pos -= radix
		}
		pos *= 2
		if pos >= radix+1 {
			pos -= radix + 1
		}
	}

	pos = radix + 1 - pos
	if pos == radix {
		pos = 0
	}
	// Even sized sets keep the running position inside the set; odd sized
	// caller supplied sets can step outside.
	if pos >= radix {
		return "", fmt.Errorf(
			"%w: position %d in a set of %d",
			errors.ErrCheckCharacterRange, pos, radix,
		)
	}
	return upper + string(alphabet.Char(pos)), nil
}
