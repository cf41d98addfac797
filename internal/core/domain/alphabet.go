// Package domain defines the core types shared by the check digit services:
// character sets, system parameters, designations and batch options.
package domain

import "strings"

// Alphabet is an ordered character set. A character's zero based position is
// its numeric value in check digit arithmetic, so order matters and
// characters must not repeat.
type Alphabet string

// The standard ISO 7064 character sets. The check variants carry one extra
// character that only ever appears in the check position.
const (
	// Numeric is the decimal digits, used by MOD 11,10 and MOD 97-10.
	Numeric Alphabet = "0123456789"

	// NumericCheck is Numeric plus the supplementary check character "X",
	// used by MOD 11-2 (ORCID style identifiers).
	NumericCheck Alphabet = "0123456789X"

	// Hexadecimal extends the digits to base 16, used by the MOD 17,16 and
	// MOD 251-16 extensions.
	Hexadecimal Alphabet = "0123456789ABCDEF"

	// Alphabetic is the upper case letters, used by MOD 27,26 and MOD 661-26.
	Alphabetic Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Alphanumeric combines digits and upper case letters, used by MOD 37,36
	// and MOD 1271-36.
	Alphanumeric Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// AlphanumericCheck is Alphanumeric plus the supplementary check
	// character "*", used by MOD 37-2.
	AlphanumericCheck Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ*"
)

// Size returns the number of characters in the set, which doubles as the
// radix candidate during parameter resolution.
func (a Alphabet) Size() int {
	return len(a)
}

// Index returns the zero based position of c, or -1 when c is not part of
// the set. Lookup is exact: values are uppercased before lookup, the set
// never is.
func (a Alphabet) Index(c byte) int {
	return strings.IndexByte(string(a), c)
}

// Char returns the character at position i. Callers must keep i inside
// [0, Size).
func (a Alphabet) Char(i int) byte {
	return a[i]
}

// Contains reports whether c is part of the set.
func (a Alphabet) Contains(c byte) bool {
	return a.Index(c) >= 0
}
