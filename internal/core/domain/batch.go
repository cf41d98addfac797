package domain

import "time"

// BatchOperation selects what the batch processor does with each identifier.
type BatchOperation string

const (
	// OperationVerify checks the trailing check character(s) of every line.
	OperationVerify BatchOperation = "verify"

	// OperationCalculate appends check character(s) to every line.
	OperationCalculate BatchOperation = "calculate"
)

// FailureReason classifies why a single identifier failed.
type FailureReason string

const (
	// FailureEmptyValue marks an empty identifier. Blank input lines are
	// skipped before processing, so this mirrors the library's empty value
	// failure for values arriving through the API.
	FailureEmptyValue FailureReason = "empty-value"

	// FailureInvalidCharacter marks an identifier containing a character
	// outside the system's character set.
	FailureInvalidCharacter FailureReason = "invalid-character"

	// FailureCheckMismatch marks an identifier whose check characters do not
	// match its content.
	FailureCheckMismatch FailureReason = "check-mismatch"

	// FailureTooShort marks an identifier no longer than the check
	// characters themselves.
	FailureTooShort FailureReason = "too-short"
)

// BatchOptions defines the configuration parameters for batch processing.
type BatchOptions struct {
	// Designation selects the check digit system applied to every
	// identifier in the input.
	Designation Designation

	// Operation chooses between verifying existing check characters and
	// calculating new ones.
	//
	// Default: verify
	Operation BatchOperation

	// Concurrency is the number of workers processing chunks in parallel.
	// Check digit arithmetic is CPU bound, so more workers than cores buys
	// nothing.
	//
	// Default: number of CPU cores
	Concurrency int

	// ChunkSize is the number of identifiers handed to a worker at once.
	// Larger chunks amortize scheduling, smaller chunks spread uneven work.
	//
	// Default: 1024
	ChunkSize int

	// MaxFailures caps how many per identifier failure details the report
	// retains. Counts stay exact beyond the cap.
	//
	// Default: 100
	MaxFailures int

	// Compression configures the zstd codec used for ".zst" inputs,
	// outputs and reports.
	// If not specified, default compression options will be used.
	Compression *CompressionOptions

	// Checksum configures the provenance digests recorded in the report.
	// If not specified, default checksum options will be used.
	Checksum *ChecksumOptions
}

// Failure records one identifier the processor could not verify or extend.
type Failure struct {
	Line   int           `json:"line"`   // 1 based line number in the input
	Value  string        `json:"value"`  // the identifier as read
	Reason FailureReason `json:"reason"` // why it failed
}

// Report summarizes one batch run. The checksum fields hold digests of the
// input file as read and the output file as written, prefixed with the
// algorithm name.
type Report struct {
	Designation    Designation    `json:"designation"`
	Operation      BatchOperation `json:"operation"`
	Total          int            `json:"total"`   // identifiers processed
	Valid          int            `json:"valid"`   // verified valid or extended
	Invalid        int            `json:"invalid"` // everything else
	Failures       []Failure      `json:"failures,omitempty"`
	InputChecksum  string         `json:"input_checksum,omitempty"`
	OutputChecksum string         `json:"output_checksum,omitempty"`
	Started        time.Time      `json:"started"`
	Elapsed        time.Duration  `json:"elapsed"` // nanoseconds, see time.Duration
}
