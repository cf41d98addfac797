package batch

import (
	"fmt"

	"github.com/GiantZOC/ISO-7064/internal/adapters/checksum"
	"github.com/GiantZOC/ISO-7064/internal/adapters/compression"
	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
	"github.com/GiantZOC/ISO-7064/pkg/system"
)

func Validate(opts *domain.BatchOptions) error {
	if opts.Designation != "" && !opts.Designation.IsValid() {
		return fmt.Errorf("%w: %q", errors.ErrUnknownDesignation, string(opts.Designation))
	}

	if opts.Operation != "" &&
		opts.Operation != domain.OperationVerify &&
		opts.Operation != domain.OperationCalculate {
		return fmt.Errorf(
			"operation must be %q or %q, got %q",
			domain.OperationVerify, domain.OperationCalculate, opts.Operation,
		)
	}

	if opts.Concurrency < 0 || opts.Concurrency > system.MaxConcurrency() {
		return fmt.Errorf("concurrency must be between 0 and %d, got %d", system.MaxConcurrency(), opts.Concurrency)
	}

	if opts.ChunkSize < 0 || opts.ChunkSize > MaxChunkSize {
		return fmt.Errorf("chunk size must be between 0 and %d, got %d", MaxChunkSize, opts.ChunkSize)
	}

	if opts.MaxFailures < 0 {
		return fmt.Errorf("max failures must not be negative, got %d", opts.MaxFailures)
	}

	if opts.Compression != nil {
		if err := compression.Validate(opts.Compression); err != nil {
			return err
		}
	}

	if opts.Checksum != nil {
		if err := checksum.Validate(opts.Checksum); err != nil {
			return err
		}
	}

	return nil
}
