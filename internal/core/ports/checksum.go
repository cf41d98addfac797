package ports

// Checksum computes content digests for batch file provenance.
type Checksum interface {
	// Sum returns the hex encoded digest of data.
	Sum(data []byte) string

	// Name returns the algorithm name recorded next to the digest.
	Name() string
}
