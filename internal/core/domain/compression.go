package domain

// CompressionOptions configures the zstd codec behind compressed batch
// files (".zst" inputs, outputs and reports).
type CompressionOptions struct {
	// Level defines the zstd compression level.
	// Supported levels:
	//   - FastestLevel: fastest compression, largest output
	//   - DefaultLevel: balanced speed and compression ratio
	//   - BestLevel: maximum compression regardless of CPU cost
	// If not specified, DefaultLevel will be used.
	Level uint8

	// EncoderConcurrency specifies the number of concurrent compression
	// operations. Higher values may improve compression speed but increase
	// memory usage. Default is number of CPU cores if set to 0.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of concurrent decompression
	// operations. Higher values may improve read performance but increase
	// memory usage. Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8
}
