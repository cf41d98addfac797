// Package compression wraps the zstd codec behind compressed batch files.
// It offers thread-safe encode and decode operations with configurable
// compression levels and concurrency.
package compression

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
)

// ZstdCompression implements the Compression port using the zstd algorithm.
// Every payload is encoded, even ones the codec cannot shrink: readers of
// ".zst" files decode unconditionally, so a raw passthrough would hand them
// bytes that are not a zstd frame.
type ZstdCompression struct {
	level   uint8
	mu      sync.RWMutex
	decoder *zstd.Decoder
	encoder *zstd.Encoder
}

// Compression level constants define the trade-off between compression ratio and speed.
// Higher levels provide better compression at the cost of increased CPU usage and time.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 3 // Balanced between speed and compression ratio
	BestLevel    uint8 = 4 // Maximum compression ratio, higher CPU usage
)

// NewZstdCompression creates a new zstd compression instance with the given
// options. A nil opts selects DefaultOptions. Zero concurrency values
// resolve to the number of CPU cores.
//
// Returns an error if:
// - The compression level is invalid
// - The encoder or decoder initialization fails
func NewZstdCompression(opts *domain.CompressionOptions) (*ZstdCompression, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}

	encoderConcurrency := int(opts.EncoderConcurrency)
	if encoderConcurrency == 0 {
		encoderConcurrency = runtime.NumCPU()
	}
	decoderConcurrency := int(opts.DecoderConcurrency)
	if decoderConcurrency == 0 {
		decoderConcurrency = runtime.NumCPU()
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(encoderConcurrency),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(decoderConcurrency))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.Level}, nil
}

// Compress encodes data as a zstd frame.
// The operation is thread-safe and can be called concurrently.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.encoder.EncodeAll(data, nil), nil
}

// Decompress restores the original data from its compressed form.
// The operation is thread-safe and can be called concurrently.
//
// Returns an error if the input data is not valid zstd compressed data.
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (z *ZstdCompression) Level() uint8 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.level
}

// Close releases all resources used by the compression instance.
// After closing, the instance cannot be used for compression or decompression.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
