package checkdigit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

func TestCalculateHybrid(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		alphabet domain.Alphabet
		expected string
	}{
		{"MOD 11,10 standard example", "0794", domain.Numeric, "07945"},
		{"MOD 11,10 zero check character", "79927398710", domain.Numeric, "799273987100"},
		{"MOD 17,16", "ABCDEF", domain.Hexadecimal, "ABCDEF7"},
		{"MOD 27,26 standard example", "ISO", domain.Alphabetic, "ISOT"},
		{"MOD 37,36 standard example", "ISO79", domain.Alphanumeric, "ISO799"},
		{"MOD 37,36 short value", "B32", domain.Alphanumeric, "B327"},
		{"lowercase input is uppercased", "iso", domain.Alphabetic, "ISOT"},
		{"odd sized custom set in range", "A", "ABCDE", "AC"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			full, err := CalculateHybrid(tc.value, tc.alphabet)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, full)
		})
	}
}

func TestCalculateHybridFailures(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		alphabet domain.Alphabet
		sentinel error
	}{
		{"empty value", "", domain.Numeric, errors.ErrEmptyValue},
		{"character outside the set", "12#4", domain.Numeric, errors.ErrInvalidCharacter},
		{"repeated characters in the set", "AB", "AABBC", errors.ErrInvalidCharacterSet},
		{"empty character set", "AB", "", errors.ErrInvalidCharacterSet},
		{"odd sized custom set out of range", "AE", "ABCDE", errors.ErrCheckCharacterRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateHybrid(tc.value, tc.alphabet)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}
