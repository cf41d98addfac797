package ports

// Compression abstracts the codec behind compressed batch files.
// This allows us to swap compression algorithms without changing core logic.
type Compression interface {
	// Compress reduces data size.
	// Returns compressed data and any error that occurred.
	Compress(data []byte) ([]byte, error)

	// Decompress restores original data.
	// Returns decompressed data and any error that occurred.
	Decompress(data []byte) ([]byte, error)

	// Close cleans up compression resources.
	Close() error
}
