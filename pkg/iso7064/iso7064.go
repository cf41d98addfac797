// Package iso7064 computes and verifies ISO 7064 check characters.
//
// The standard defines two families of systems. Pure systems run a single
// weighted recurrence modulo a prime above the radix and append one or two
// check characters; hybrid systems run the double-add-double recurrence
// modulo radix+1 and always append one. Which family applies is derived
// from the character set size and the digit mode, so callers pick a set,
// a mode, and a value:
//
//	full, err := iso7064.CalculateCheckDigit("794", iso7064.CharacterSetNumeric, true) // "79444"
//	ok := iso7064.VerifyCheckDigit("79444", iso7064.CharacterSetNumeric, true)        // true
//
// The standard systems are also reachable by their ISO designation, for
// example "MOD 97-10" or "MOD 11-2", via CalculateByDesignation and
// VerifyByDesignation.
package iso7064

import (
	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/internal/core/services/checkdigit"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
)

// Character sets of the standard systems. The generic operations accept any
// custom set as long as its length resolves to a supported radix.
const (
	CharacterSetNumeric           = string(domain.Numeric)
	CharacterSetNumericCheck      = string(domain.NumericCheck)
	CharacterSetHexadecimal       = string(domain.Hexadecimal)
	CharacterSetAlphabetic        = string(domain.Alphabetic)
	CharacterSetAlphanumeric      = string(domain.Alphanumeric)
	CharacterSetAlphanumericCheck = string(domain.AlphanumericCheck)
)

// Failure sentinels, re-exported so callers only need this package.
// ErrEmptyValue and ErrInvalidCharacter describe the supplied value;
// the others describe the supplied configuration.
var (
	ErrEmptyValue          = errors.ErrEmptyValue
	ErrInvalidCharacter    = errors.ErrInvalidCharacter
	ErrInvalidCharacterSet = errors.ErrInvalidCharacterSet
	ErrInvalidParameters   = errors.ErrInvalidParameters
	ErrCheckCharacterRange = errors.ErrCheckCharacterRange
	ErrUnknownDesignation  = errors.ErrUnknownDesignation
)

// CalculateCheckDigit appends check character(s) to value. The system is
// selected from the character set size and digit mode; lowercase input is
// uppercased before processing.
func CalculateCheckDigit(value, characterSet string, doubleDigit bool) (string, error) {
	return checkdigit.Calculate(value, domain.Alphabet(characterSet), doubleDigit)
}

// VerifyCheckDigit reports whether value ends in check character(s)
// consistent with the rest of it. Malformed values read as invalid, never
// as an error.
func VerifyCheckDigit(value, characterSet string, doubleDigit bool) bool {
	return checkdigit.Verify(value, domain.Alphabet(characterSet), doubleDigit)
}

// CalculatePureSystemCheckDigit runs the pure recurrence with an explicit
// (radix, modulus) pair instead of the derived one. Most callers want
// CalculateCheckDigit; this exists for systems outside the standard table.
func CalculatePureSystemCheckDigit(value string, radix, modulus int, characterSet string, doubleDigit bool) (string, error) {
	return checkdigit.CalculatePure(value, radix, modulus, domain.Alphabet(characterSet), doubleDigit)
}

// VerifyPureSystemCheckDigit is VerifyCheckDigit with explicit parameters.
func VerifyPureSystemCheckDigit(value string, radix, modulus int, characterSet string, doubleDigit bool) bool {
	return checkdigit.VerifyPure(value, radix, modulus, domain.Alphabet(characterSet), doubleDigit)
}

// CalculateHybridSystemCheckDigit runs the hybrid recurrence directly over
// the given set, bypassing parameter resolution.
func CalculateHybridSystemCheckDigit(value, characterSet string) (string, error) {
	return checkdigit.CalculateHybrid(value, domain.Alphabet(characterSet))
}
