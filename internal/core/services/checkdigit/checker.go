package checkdigit

import (
	"fmt"
	"strings"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

// Checker binds one character set and digit mode with system parameters
// resolved once at construction. It satisfies the check digit port for
// callers that run many values against the same system, such as the batch
// processor.
type Checker struct {
	alphabet    domain.Alphabet
	params      domain.Params
	doubleDigit bool
}

// NewChecker validates the character set and resolves the system up front.
// Construction is the only place configuration errors surface; later calls
// follow the calculation contract.
func NewChecker(alphabet domain.Alphabet, doubleDigit bool) (*Checker, error) {
	if err := ValidateAlphabet(alphabet); err != nil {
		return nil, err
	}

	params, err := Resolve(alphabet.Size(), doubleDigit)
	if err != nil {
		return nil, err
	}

	return &Checker{alphabet: alphabet, params: params, doubleDigit: doubleDigit}, nil
}

// NewCheckerForDesignation builds a Checker for a named ISO 7064 system.
func NewCheckerForDesignation(d domain.Designation) (*Checker, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownDesignation, string(d))
	}
	return NewChecker(d.CharacterSet(), d.DoubleDigit())
}

// Calculate appends check character(s) to value using the bound system.
func (c *Checker) Calculate(value string) (string, error) {
	if c.params.Modulus != c.params.Radix+1 {
		return CalculatePure(value, c.params.Radix, c.params.Modulus, c.alphabet, c.doubleDigit)
	}
	return CalculateHybrid(value, c.alphabet)
}

// Verify reports whether value ends in valid check character(s) for the
// bound system.
func (c *Checker) Verify(value string) bool {
	prefix, ok := splitCheck(value, c.doubleDigit)
	if !ok {
		return false
	}

	full, err := c.Calculate(prefix)
	if err != nil {
		return false
	}
	return full == strings.ToUpper(value)
}

// CheckLength returns how many check characters the bound system appends.
func (c *Checker) CheckLength() int {
	if c.doubleDigit {
		return 2
	}
	return 1
}
