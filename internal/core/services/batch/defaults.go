package batch

import (
	"github.com/GiantZOC/ISO-7064/internal/adapters/checksum"
	"github.com/GiantZOC/ISO-7064/internal/adapters/compression"
	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/system"
)

const (
	DefaultChunkSize   = 1024
	DefaultMaxFailures = 100

	// MaxChunkSize bounds per worker memory when a caller asks for huge
	// chunks.
	MaxChunkSize = 1 << 16

	// CompressedExtension marks files read and written through the zstd
	// codec.
	CompressedExtension = ".zst"

	defaultBufferSize = 1 << 16 // 64KB, output assembly starts here and grows
)

func prepareDefaults(opts *domain.BatchOptions) *domain.BatchOptions {
	if opts.Designation == "" {
		opts.Designation = domain.Mod97_10
	}

	if opts.Operation == "" {
		opts.Operation = domain.OperationVerify
	}

	if opts.Concurrency == 0 {
		opts.Concurrency = system.DefaultConcurrency()
	}

	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if opts.MaxFailures == 0 {
		opts.MaxFailures = DefaultMaxFailures
	}

	if opts.Compression == nil {
		opts.Compression = compression.DefaultOptions()
	}

	if opts.Checksum == nil {
		opts.Checksum = checksum.DefaultOptions()
	}

	return opts
}
