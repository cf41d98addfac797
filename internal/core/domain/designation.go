package domain

import "strings"

// Designation names one ISO 7064 check character system. The standard
// spells hybrid system names with a comma (MOD 11,10) and pure system names
// with a hyphen (MOD 97-10).
type Designation string

const (
	// Mod11_2 appends one of "0"-"9" or "X" to decimal digits.
	Mod11_2 Designation = "MOD 11-2"

	// Mod37_2 appends one alphanumeric character or "*".
	Mod37_2 Designation = "MOD 37-2"

	// Mod97_10 appends two decimal digits (IBAN style).
	Mod97_10 Designation = "MOD 97-10"

	// Mod661_26 appends two letters.
	Mod661_26 Designation = "MOD 661-26"

	// Mod1271_36 appends two alphanumeric characters.
	Mod1271_36 Designation = "MOD 1271-36"

	// Mod11_10 appends one decimal digit.
	Mod11_10 Designation = "MOD 11,10"

	// Mod27_26 appends one letter.
	Mod27_26 Designation = "MOD 27,26"

	// Mod37_36 appends one alphanumeric character.
	Mod37_36 Designation = "MOD 37,36"

	// Mod17_16 appends one hexadecimal digit. A hexadecimal extension, not
	// one of the eight systems the standard defines.
	Mod17_16 Designation = "MOD 17,16"

	// Mod251_16 appends two hexadecimal digits. Also an extension.
	Mod251_16 Designation = "MOD 251-16"
)

// systems binds each designation to its character set and digit count.
var systems = map[Designation]struct {
	alphabet    Alphabet
	doubleDigit bool
}{
	Mod11_2:    {NumericCheck, false},
	Mod37_2:    {AlphanumericCheck, false},
	Mod97_10:   {Numeric, true},
	Mod661_26:  {Alphabetic, true},
	Mod1271_36: {Alphanumeric, true},
	Mod11_10:   {Numeric, false},
	Mod27_26:   {Alphabetic, false},
	Mod37_36:   {Alphanumeric, false},
	Mod17_16:   {Hexadecimal, false},
	Mod251_16:  {Hexadecimal, true},
}

// designationOrder fixes the listing order for tooling output.
var designationOrder = []Designation{
	Mod11_2, Mod11_10, Mod17_16, Mod27_26, Mod37_2,
	Mod37_36, Mod97_10, Mod251_16, Mod661_26, Mod1271_36,
}

func (d Designation) String() string {
	return string(d)
}

// IsValid reports whether the designation names a known system.
func (d Designation) IsValid() bool {
	_, ok := systems[d]
	return ok
}

// CharacterSet returns the character set the system operates on.
func (d Designation) CharacterSet() Alphabet {
	return systems[d].alphabet
}

// DoubleDigit reports whether the system appends two check characters.
func (d Designation) DoubleDigit() bool {
	return systems[d].doubleDigit
}

// Designations lists every known system in display order.
func Designations() []Designation {
	out := make([]Designation, len(designationOrder))
	copy(out, designationOrder)
	return out
}

// ParseDesignation is lenient about case, spacing and the MOD prefix:
// "MOD 97-10", "mod97-10" and "97-10" all name the same system.
func ParseDesignation(s string) (Designation, bool) {
	key := normalizeDesignation(s)
	if key == "" {
		return "", false
	}
	for d := range systems {
		if normalizeDesignation(string(d)) == key {
			return d, true
		}
	}
	return "", false
}

func normalizeDesignation(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "MOD")
	return strings.ReplaceAll(s, " ", "")
}
