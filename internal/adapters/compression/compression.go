package compression

import (
	"fmt"
	"runtime"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
)

// Returns CompressionOptions initialized with defaults that balance
// compression ratio and throughput for batch files.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Level:              DefaultLevel,
		EncoderConcurrency: uint8(runtime.NumCPU()),
		DecoderConcurrency: uint8(runtime.NumCPU()),
	}
}

// Checks if the compression options are valid and returns an error if any option
// is outside acceptable bounds. Zero concurrency values are allowed and resolve
// to the CPU count at construction.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level)
	}

	if input.EncoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"encoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.EncoderConcurrency,
		)
	}

	if input.DecoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}
