package checkdigit

import (
	"fmt"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

// ValidateAlphabet checks the structural invariants every character set
// must hold before any arithmetic: at least one character, no repeats.
func ValidateAlphabet(alphabet domain.Alphabet) error {
	if alphabet.Size() == 0 {
		return fmt.Errorf("%w: empty set", errors.ErrInvalidCharacterSet)
	}

	seen := make(map[byte]struct{}, alphabet.Size())
	for i := 0; i < alphabet.Size(); i++ {
		c := alphabet.Char(i)
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: repeated character %q", errors.ErrInvalidCharacterSet, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
