package iso7064

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/GiantZOC/ISO-7064/pkg/errors"
)

func TestGoldenVectors(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		set         string
		doubleDigit bool
		expected    string
	}{
		{"MOD 97-10", "794", CharacterSetNumeric, true, "79444"},
		{"MOD 11-2", "0794", CharacterSetNumericCheck, false, "07940"},
		{"MOD 11-2 ORCID", "000000021825009", CharacterSetNumericCheck, false, "0000000218250097"},
		{"MOD 11,10", "0794", CharacterSetNumeric, false, "07945"},
		{"MOD 11,10 zero check", "79927398710", CharacterSetNumeric, false, "799273987100"},
		{"MOD 1271-36", "ISO79", CharacterSetAlphanumeric, true, "ISO793W"},
		{"MOD 37,36", "ISO79", CharacterSetAlphanumeric, false, "ISO799"},
		{"MOD 37,36 short", "B32", CharacterSetAlphanumeric, false, "B327"},
		{"MOD 27,26", "ISO", CharacterSetAlphabetic, false, "ISOT"},
		{"MOD 661-26", "ABC", CharacterSetAlphabetic, true, "ABCJI"},
		{"MOD 17,16", "ABCDEF", CharacterSetHexadecimal, false, "ABCDEF7"},
		{"MOD 251-16", "CAFE", CharacterSetHexadecimal, true, "CAFECF"},
		{"MOD 37-2", "A1", CharacterSetAlphanumericCheck, false, "A1X"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			full, err := CalculateCheckDigit(tc.value, tc.set, tc.doubleDigit)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, full)
			assert.True(t, VerifyCheckDigit(full, tc.set, tc.doubleDigit))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	combos := []struct {
		name        string
		set         string
		doubleDigit bool
		samples     []string
	}{
		{"numeric single", CharacterSetNumeric, false, []string{"0794", "79927398710"}},
		{"numeric double", CharacterSetNumeric, true, []string{"794", "538"}},
		{"numeric check single", CharacterSetNumericCheck, false, []string{"0794", "000000021825009"}},
		{"hexadecimal single", CharacterSetHexadecimal, false, []string{"ABCDEF", "D4B9"}},
		{"hexadecimal double", CharacterSetHexadecimal, true, []string{"CAFE", "12AB34"}},
		{"alphabetic single", CharacterSetAlphabetic, false, []string{"ISO", "CHECKSUM"}},
		{"alphabetic double", CharacterSetAlphabetic, true, []string{"ABC", "ISOHQ"}},
		{"alphanumeric single", CharacterSetAlphanumeric, false, []string{"ISO79", "B32"}},
		{"alphanumeric double", CharacterSetAlphanumeric, true, []string{"ISO79", "XS868"}},
		{"alphanumeric check single", CharacterSetAlphanumericCheck, false, []string{"A1", "ISO79"}},
	}

	for _, combo := range combos {
		t.Run(combo.name, func(t *testing.T) {
			for _, sample := range combo.samples {
				full, err := CalculateCheckDigit(sample, combo.set, combo.doubleDigit)
				require.NoError(t, err)
				assert.True(t, VerifyCheckDigit(full, combo.set, combo.doubleDigit),
					"calculated value %q did not verify", full)
			}
		})
	}
}

func TestNamedWrappers(t *testing.T) {
	full, err := CalculateNumericCheckDigit("794", true)
	require.NoError(t, err)
	assert.Equal(t, "79444", full)
	assert.True(t, VerifyNumericCheckDigit("07945", false))

	full, err = CalculateHexCheckDigit("ABCDEF", false)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF7", full)
	assert.True(t, VerifyHexCheckDigit("CAFECF", true))

	full, err = CalculateAlphaCheckDigit("ISO", false)
	require.NoError(t, err)
	assert.Equal(t, "ISOT", full)
	assert.True(t, VerifyAlphaCheckDigit("ABCJI", true))

	full, err = CalculateAlphanumericCheckDigit("ISO79", false)
	require.NoError(t, err)
	assert.Equal(t, "ISO799", full)
	assert.True(t, VerifyAlphanumericCheckDigit("ISO793W", true))
}

func TestExplicitParameters(t *testing.T) {
	full, err := CalculatePureSystemCheckDigit("794", 10, 97, CharacterSetNumeric, true)
	require.NoError(t, err)
	assert.Equal(t, "79444", full)
	assert.True(t, VerifyPureSystemCheckDigit("79444", 10, 97, CharacterSetNumeric, true))
	assert.False(t, VerifyPureSystemCheckDigit("79445", 10, 97, CharacterSetNumeric, true))

	full, err = CalculateHybridSystemCheckDigit("0794", CharacterSetNumeric)
	require.NoError(t, err)
	assert.Equal(t, "07945", full)
}

func TestValueFailures(t *testing.T) {
	_, err := CalculateCheckDigit("", CharacterSetNumeric, false)
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = CalculateCheckDigit("12#4", CharacterSetNumeric, false)
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	// Lowercase is not a failure, it is normalized.
	full, err := CalculateCheckDigit("iso79", CharacterSetAlphanumeric, true)
	require.NoError(t, err)
	assert.Equal(t, "ISO793W", full)

	// Short and empty candidates verify to false, never to an error.
	assert.False(t, VerifyCheckDigit("4", CharacterSetNumeric, false))
	assert.False(t, VerifyCheckDigit("44", CharacterSetNumeric, true))
	assert.False(t, VerifyCheckDigit("", CharacterSetNumeric, false))
}

func TestConfigurationFailures(t *testing.T) {
	// No system exists for a five character set.
	_, err := CalculateCheckDigit("ABC", "ABCDE", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCharacterSet)
	assert.True(t, pkgerrors.IsValidationError(err))

	validation := pkgerrors.AsValidationError(err)
	require.NotNil(t, validation)
	assert.Equal(t, "characterSet", validation.Field)

	// Double digit mode over the supplementary check alphabets is not a
	// defined system.
	_, err = CalculateCheckDigit("0794", CharacterSetNumericCheck, true)
	assert.ErrorIs(t, err, ErrInvalidCharacterSet)

	_, err = CalculateCheckDigit("A1", CharacterSetAlphanumericCheck, true)
	assert.ErrorIs(t, err, ErrInvalidCharacterSet)
}

func TestDesignations(t *testing.T) {
	full, err := CalculateByDesignation("MOD 97-10", "794")
	require.NoError(t, err)
	assert.Equal(t, "79444", full)

	// Parsing tolerates case and spacing differences.
	full, err = CalculateByDesignation("mod 11-2", "000000021825009")
	require.NoError(t, err)
	assert.Equal(t, "0000000218250097", full)

	ok, err := VerifyByDesignation("MOD 11-2", "0000000218250097")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyByDesignation("MOD 97-10", "79445")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CalculateByDesignation("MOD 99-9", "794")
	assert.ErrorIs(t, err, ErrUnknownDesignation)

	_, err = VerifyByDesignation("", "794")
	assert.ErrorIs(t, err, ErrUnknownDesignation)

	names := Designations()
	assert.Len(t, names, 10)
	assert.Contains(t, names, "MOD 97-10")
	assert.Contains(t, names, "MOD 11,10")
}
