package domain

// ChecksumAlgorithm names a supported file digest algorithm.
type ChecksumAlgorithm string

// ChecksumOptions configures the provenance digests recorded in batch
// reports.
type ChecksumOptions struct {
	// Enable controls whether input and output file digests are recorded.
	// When true, every report carries the digest of the exact bytes read
	// and written. When false, no digests are calculated, saving the
	// hashing cost on large files.
	//
	// Default: true
	Enable bool

	// Algorithm specifies which digest algorithm to use.
	// Defaults to CRC32IEEE if not specified.
	Algorithm ChecksumAlgorithm
}
