package ports

// CheckDigit is one check digit system bound to its character set, ready to
// apply to many values.
type CheckDigit interface {
	// Calculate appends check character(s) to value.
	// Returns the uppercased result and any error that occurred.
	Calculate(value string) (string, error)

	// Verify reports whether value ends in check character(s) consistent
	// with the rest of it. Every failure reads as false.
	Verify(value string) bool

	// CheckLength returns how many trailing characters the system appends.
	CheckLength() int
}
