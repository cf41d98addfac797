package checkdigit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		doubleDigit bool
		radix       int
		modulus     int
	}{
		{"numeric single is MOD 11,10", 10, false, 10, 11},
		{"numeric double is MOD 97-10", 10, true, 10, 97},
		{"numeric with X is MOD 11-2", 11, false, 2, 11},
		{"hex single is MOD 17,16", 16, false, 16, 17},
		{"hex double is MOD 251-16", 16, true, 16, 251},
		{"alphabetic single is MOD 27,26", 26, false, 26, 27},
		{"alphabetic double is MOD 661-26", 26, true, 26, 661},
		{"alphanumeric single is MOD 37,36", 36, false, 36, 37},
		{"alphanumeric double is MOD 1271-36", 36, true, 36, 1271},
		{"alphanumeric with star is MOD 37-2", 37, false, 2, 37},
		{"binary set stays at radix plus one", 2, false, 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params, err := Resolve(tc.size, tc.doubleDigit)
			require.NoError(t, err)
			assert.Equal(t, domain.Params{Radix: tc.radix, Modulus: tc.modulus}, params)
		})
	}
}

func TestResolveUnsupportedSizes(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		doubleDigit bool
	}{
		{"empty set", 0, false},
		{"single character set", 1, false},
		{"five characters", 5, false},
		{"twelve characters", 12, false},
		{"double digit over numeric with X", 11, true},
		{"double digit over alphanumeric with star", 37, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.size, tc.doubleDigit)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidCharacterSet)
			require.True(t, errors.IsValidationError(err))
			assert.Equal(t, "characterSet", errors.AsValidationError(err).Field)
		})
	}
}
