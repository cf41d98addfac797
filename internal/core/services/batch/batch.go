package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GiantZOC/ISO-7064/internal/adapters/checksum"
	"github.com/GiantZOC/ISO-7064/internal/adapters/compression"
	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/internal/core/ports"
	"github.com/GiantZOC/ISO-7064/internal/core/services/checkdigit"
	"github.com/GiantZOC/ISO-7064/internal/serialize"
	"github.com/GiantZOC/ISO-7064/pkg/fs"
	"github.com/GiantZOC/ISO-7064/pkg/pool"
)

// New creates a Processor for the configured designation and operation.
// Passing nil opts runs verification with MOD 97-10 over default fan out.
func New(opts *domain.BatchOptions, logger *zap.SugaredLogger) (*Processor, error) {
	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
	}

	if opts != nil {
		opts = prepareDefaults(opts)
	} else {
		opts = prepareDefaults(&domain.BatchOptions{})
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	checker, err := checkdigit.NewCheckerForDesignation(opts.Designation)
	if err != nil {
		return nil, err
	}

	codec, err := compression.NewZstdCompression(opts.Compression)
	if err != nil {
		return nil, err
	}

	var digest ports.Checksum
	if opts.Checksum.Enable {
		if digest, err = checksum.New(opts.Checksum.Algorithm); err != nil {
			return nil, err
		}
	}

	return &Processor{
		fs:         fs.NewLocalFileSystem(),
		codec:      codec,
		digest:     digest,
		checker:    checker,
		alphabet:   opts.Designation.CharacterSet(),
		options:    opts,
		logger:     logger,
		bufferPool: pool.NewBufferPool(defaultBufferSize),
	}, nil
}

// ProcessFile runs the configured operation over every identifier in
// inputPath. Calculate runs write one output line per input line to
// outputPath; verify runs take no output file. Inputs, outputs and reports
// ending in ".zst" pass through the zstd codec.
func (p *Processor) ProcessFile(ctx context.Context, inputPath, outputPath string) (*domain.Report, error) {
	if p.options.Operation == domain.OperationCalculate && outputPath == "" {
		return nil, fmt.Errorf("calculate runs need an output path")
	}

	started := time.Now()

	lines, numbers, inputDigest, err := p.readInput(inputPath)
	if err != nil {
		return nil, err
	}

	results, err := p.processChunks(ctx, lines, numbers)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Designation:   p.options.Designation,
		Operation:     p.options.Operation,
		Total:         len(lines),
		InputChecksum: inputDigest,
		Started:       started,
	}

	output := p.bufferPool.Get()
	defer p.bufferPool.Put(output)

	for _, result := range results {
		report.Valid += result.valid
		report.Invalid += len(result.failures)

		for _, failure := range result.failures {
			if len(report.Failures) < p.options.MaxFailures {
				report.Failures = append(report.Failures, failure)
			}
		}

		for _, line := range result.lines {
			output.WriteString(line)
			output.WriteByte('\n')
		}
	}
	report.Elapsed = time.Since(started)

	if p.options.Operation == domain.OperationCalculate {
		outputDigest, err := p.writeFile(outputPath, output.Bytes())
		if err != nil {
			return nil, err
		}
		report.OutputChecksum = outputDigest
	}

	p.logger.Infow(
		"batch run complete",
		"designation", report.Designation,
		"operation", report.Operation,
		"total", report.Total,
		"valid", report.Valid,
		"invalid", report.Invalid,
		"elapsed", report.Elapsed,
	)

	return report, nil
}

// WriteReport renders the report as indented JSON at path, compressed when
// path ends in ".zst".
func (p *Processor) WriteReport(report *domain.Report, path string) error {
	contents, err := serialize.MarshalIndentJSON(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = p.writeFile(path, append(contents, '\n'))
	return err
}

// Close releases the compression codec. The processor cannot be used
// afterwards.
func (p *Processor) Close() error {
	return p.codec.Close()
}

// processChunks fans chunks out to at most Concurrency workers. Each chunk
// lands in its own slot of the result slice, so no state is shared and the
// assembled output keeps input order.
func (p *Processor) processChunks(ctx context.Context, lines []string, numbers []int) ([]chunkResult, error) {
	size := p.options.ChunkSize
	count := (len(lines) + size - 1) / size
	results := make([]chunkResult, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.options.Concurrency)

	for index := 0; index < count; index++ {
		index := index
		start := index * size
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[index] = p.processChunk(index, lines[start:end], numbers[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// processChunk handles one slice of identifiers and returns an independent
// result.
func (p *Processor) processChunk(index int, lines []string, numbers []int) chunkResult {
	result := chunkResult{index: index}
	if p.options.Operation == domain.OperationCalculate {
		result.lines = make([]string, 0, len(lines))
	}

	for i, value := range lines {
		switch p.options.Operation {
		case domain.OperationCalculate:
			full, err := p.checker.Calculate(value)
			if err != nil {
				result.failures = append(result.failures, domain.Failure{
					Line:   numbers[i],
					Value:  value,
					Reason: p.classify(value),
				})
				result.lines = append(result.lines, value)
				continue
			}
			result.valid++
			result.lines = append(result.lines, full)

		default:
			if !p.checker.Verify(value) {
				result.failures = append(result.failures, domain.Failure{
					Line:   numbers[i],
					Value:  value,
					Reason: p.classify(value),
				})
				continue
			}
			result.valid++
		}
	}

	return result
}

// classify explains a failed identifier by inspecting the value the same
// way the checker does: emptiness, set membership, then length.
func (p *Processor) classify(value string) domain.FailureReason {
	if value == "" {
		return domain.FailureEmptyValue
	}

	upper := strings.ToUpper(value)
	for i := 0; i < len(upper); i++ {
		if !p.alphabet.Contains(upper[i]) {
			return domain.FailureInvalidCharacter
		}
	}

	if len(value) <= p.checker.CheckLength() {
		return domain.FailureTooShort
	}

	return domain.FailureCheckMismatch
}

// readInput loads the file and splits it into identifiers. Line numbers
// ride alongside because blank lines are skipped, not renumbered. The
// returned digest covers the file bytes as stored, before decompression.
func (p *Processor) readInput(path string) ([]string, []int, string, error) {
	contents, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	digest := p.digestOf(contents)

	if strings.HasSuffix(path, CompressedExtension) {
		if contents, err = p.codec.Decompress(contents); err != nil {
			return nil, nil, "", fmt.Errorf("decompressing %s: %w", path, err)
		}
	}

	lines, numbers := splitLines(string(contents))
	return lines, numbers, digest, nil
}

// writeFile writes contents, compressing them first when the target
// carries the ".zst" extension, and returns the digest of the bytes
// actually written.
func (p *Processor) writeFile(path string, contents []byte) (string, error) {
	if strings.HasSuffix(path, CompressedExtension) {
		compressed, err := p.codec.Compress(contents)
		if err != nil {
			return "", fmt.Errorf("compressing %s: %w", path, err)
		}
		contents = compressed
	}

	if err := p.fs.WriteFile(path, 0644, contents); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return p.digestOf(contents), nil
}

// digestOf labels contents with the configured digest algorithm, or
// returns "" when digests are disabled.
func (p *Processor) digestOf(contents []byte) string {
	if p.digest == nil {
		return ""
	}
	return p.digest.Name() + ":" + p.digest.Sum(contents)
}

// splitLines breaks file contents into identifiers with their 1 based line
// numbers. Windows line endings are tolerated and blank lines skipped.
func splitLines(contents string) ([]string, []int) {
	var lines []string
	var numbers []int

	for i, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
		numbers = append(numbers, i+1)
	}

	return lines, numbers
}
