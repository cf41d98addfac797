package iso7064

// Named wrappers binding the four standard character sets. They forward to
// the generic operations and add no behavior of their own.

// CalculateNumericCheckDigit appends check digit(s) over "0"-"9".
// Single digit mode selects MOD 11,10; double digit mode selects MOD 97-10.
func CalculateNumericCheckDigit(value string, doubleDigit bool) (string, error) {
	return CalculateCheckDigit(value, CharacterSetNumeric, doubleDigit)
}

// VerifyNumericCheckDigit checks a value whose check digit(s) were
// calculated over "0"-"9".
func VerifyNumericCheckDigit(value string, doubleDigit bool) bool {
	return VerifyCheckDigit(value, CharacterSetNumeric, doubleDigit)
}

// CalculateHexCheckDigit appends check digit(s) over "0"-"9","A"-"F".
// Single digit mode selects MOD 17,16; double digit mode selects MOD 251-16.
func CalculateHexCheckDigit(value string, doubleDigit bool) (string, error) {
	return CalculateCheckDigit(value, CharacterSetHexadecimal, doubleDigit)
}

// VerifyHexCheckDigit checks a value whose check digit(s) were calculated
// over "0"-"9","A"-"F".
func VerifyHexCheckDigit(value string, doubleDigit bool) bool {
	return VerifyCheckDigit(value, CharacterSetHexadecimal, doubleDigit)
}

// CalculateAlphaCheckDigit appends check character(s) over "A"-"Z".
// Single digit mode selects MOD 27,26; double digit mode selects MOD 661-26.
func CalculateAlphaCheckDigit(value string, doubleDigit bool) (string, error) {
	return CalculateCheckDigit(value, CharacterSetAlphabetic, doubleDigit)
}

// VerifyAlphaCheckDigit checks a value whose check character(s) were
// calculated over "A"-"Z".
func VerifyAlphaCheckDigit(value string, doubleDigit bool) bool {
	return VerifyCheckDigit(value, CharacterSetAlphabetic, doubleDigit)
}

// CalculateAlphanumericCheckDigit appends check character(s) over
// "0"-"9","A"-"Z". Single digit mode selects MOD 37,36; double digit mode
// selects MOD 1271-36.
func CalculateAlphanumericCheckDigit(value string, doubleDigit bool) (string, error) {
	return CalculateCheckDigit(value, CharacterSetAlphanumeric, doubleDigit)
}

// VerifyAlphanumericCheckDigit checks a value whose check character(s)
// were calculated over "0"-"9","A"-"Z".
func VerifyAlphanumericCheckDigit(value string, doubleDigit bool) bool {
	return VerifyCheckDigit(value, CharacterSetAlphanumeric, doubleDigit)
}
