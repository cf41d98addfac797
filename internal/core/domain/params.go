package domain

// Params is a resolved (radix, modulus) pair for one check digit system.
// The two relate structurally: hybrid systems are exactly those whose
// modulus is one above the radix, and calculation code picks the recurrence
// by that comparison alone.
type Params struct {
	Radix   int
	Modulus int
}
