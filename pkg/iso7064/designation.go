package iso7064

import (
	"fmt"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/internal/core/services/checkdigit"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

// CalculateByDesignation appends check character(s) using a standard system
// named by its ISO designation, for example "MOD 97-10" or "MOD 11-2".
// Designation parsing is lenient about case, spacing and the "MOD" prefix.
func CalculateByDesignation(designation, value string) (string, error) {
	d, ok := domain.ParseDesignation(designation)
	if !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownDesignation, designation)
	}
	return checkdigit.Calculate(value, d.CharacterSet(), d.DoubleDigit())
}

// VerifyByDesignation checks a value against a standard system named by its
// ISO designation. The error reports an unknown designation only; a value
// that fails verification returns false with a nil error.
func VerifyByDesignation(designation, value string) (bool, error) {
	d, ok := domain.ParseDesignation(designation)
	if !ok {
		return false, fmt.Errorf("%w: %q", errors.ErrUnknownDesignation, designation)
	}
	return checkdigit.Verify(value, d.CharacterSet(), d.DoubleDigit()), nil
}

// Designations lists the supported system names in the order the standard
// presents them.
func Designations() []string {
	all := domain.Designations()
	names := make([]string, 0, len(all))
	for _, d := range all {
		names = append(names, d.String())
	}
	return names
}
