// Package batch applies one check digit system to files of identifiers,
// one per line, fanning chunks of lines out to parallel workers.
package batch

import (
	"go.uber.org/zap"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/internal/core/ports"
	"github.com/GiantZOC/ISO-7064/pkg/pool"
)

// Processor runs one check digit system over line oriented value files.
// It can be reused across many files; Close releases the compression codec.
type Processor struct {
	// Configuration controlling designation, operation and fan out.
	options *domain.BatchOptions

	// Interfaces for file access and compressed file handling.
	fs     ports.FileSystem  // Handles file system operations.
	codec  ports.Compression // Handles ".zst" inputs, outputs and reports.
	digest ports.Checksum    // Provenance digests for the report, nil when disabled.

	// Core processing components.
	checker    ports.CheckDigit   // Check digit system resolved once from the designation.
	alphabet   domain.Alphabet    // Character set of the designation, used to classify failures.
	bufferPool *pool.BufferPool   // Buffer pool for assembling output files and reports.
	logger     *zap.SugaredLogger // Structured logger scoped to the batch service.
}

// chunkResult carries the outcome of one processed chunk back to the
// assembler. Results are indexed so output order matches input order no
// matter which worker finishes first.
type chunkResult struct {
	index    int
	valid    int
	lines    []string         // Output lines for calculate runs, one per input line.
	failures []domain.Failure // Failure details with absolute line numbers.
}
