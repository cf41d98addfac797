// Package config loads the YAML configuration driving the batch tool.
package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/GiantZOC/ISO-7064/internal/adapters/checksum"
	"github.com/GiantZOC/ISO-7064/internal/adapters/compression"
	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/internal/core/services/batch"
	"github.com/GiantZOC/ISO-7064/pkg/system"
)

type Config struct {
	Batch       BatchConfig       `yaml:"batch"`
	Compression CompressionConfig `yaml:"compression"`
	Checksum    ChecksumConfig    `yaml:"checksum"`
}

// Holds batch processing configuration.
type BatchConfig struct {
	System      string `yaml:"system"`       // ISO 7064 designation, e.g. "MOD 97-10"
	Operation   string `yaml:"operation"`    // verify or calculate
	Concurrency int    `yaml:"concurrency"`  // Parallel chunk workers, 0 = CPU count
	ChunkSize   int    `yaml:"chunk_size"`   // Identifiers per worker chunk
	MaxFailures int    `yaml:"max_failures"` // Failure details kept in the report
	Report      string `yaml:"report"`       // Report file path, ".zst" compresses
}

// Holds zstd codec configuration for ".zst" files.
type CompressionConfig struct {
	Level              uint8 `yaml:"level"`               // 1 fastest, 3 balanced, 4 best
	EncoderConcurrency uint8 `yaml:"encoder_concurrency"` // 0 = CPU count
	DecoderConcurrency uint8 `yaml:"decoder_concurrency"` // 0 = CPU count
}

// Holds provenance digest configuration for reports.
type ChecksumConfig struct {
	Enable    bool   `yaml:"enable"`    // Record input/output digests in reports
	Algorithm string `yaml:"algorithm"` // crc32-ieee, crc64-iso, crc64-ecma, sha1 or sha256
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			System:      domain.Mod97_10.String(),
			Operation:   string(domain.OperationVerify),
			ChunkSize:   batch.DefaultChunkSize,
			MaxFailures: batch.DefaultMaxFailures,
		},
		Compression: CompressionConfig{
			Level: compression.DefaultLevel,
		},
		Checksum: ChecksumConfig{
			Enable:    true,
			Algorithm: string(checksum.CRC32IEEE),
		},
	}
}

// Loads configuration from a YAML file. Keys absent from the file keep
// their defaults; an empty filename returns the defaults untouched.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig reports every invalid field at once rather than stopping
// at the first.
func validateConfig(config *Config) error {
	var errs error

	if _, ok := domain.ParseDesignation(config.Batch.System); !ok {
		errs = multierr.Append(errs, fmt.Errorf("system: unknown designation %q", config.Batch.System))
	}

	operation := domain.BatchOperation(config.Batch.Operation)
	if operation != domain.OperationVerify && operation != domain.OperationCalculate {
		errs = multierr.Append(errs, fmt.Errorf(
			"operation must be %q or %q, got %q",
			domain.OperationVerify, domain.OperationCalculate, config.Batch.Operation,
		))
	}

	if config.Batch.Concurrency < 0 || config.Batch.Concurrency > system.MaxConcurrency() {
		errs = multierr.Append(errs, fmt.Errorf(
			"concurrency must be between 0 and %d, got %d", system.MaxConcurrency(), config.Batch.Concurrency,
		))
	}

	if config.Batch.ChunkSize < 0 || config.Batch.ChunkSize > batch.MaxChunkSize {
		errs = multierr.Append(errs, fmt.Errorf(
			"chunk_size must be between 0 and %d, got %d", batch.MaxChunkSize, config.Batch.ChunkSize,
		))
	}

	if config.Batch.MaxFailures < 0 {
		errs = multierr.Append(errs, fmt.Errorf("max_failures must not be negative, got %d", config.Batch.MaxFailures))
	}

	if config.Compression.Level < compression.FastestLevel || config.Compression.Level > compression.BestLevel {
		errs = multierr.Append(errs, fmt.Errorf(
			"compression level must be between %d and %d, got %d",
			compression.FastestLevel, compression.BestLevel, config.Compression.Level,
		))
	}

	if err := checksum.Validate(&domain.ChecksumOptions{
		Enable:    config.Checksum.Enable,
		Algorithm: domain.ChecksumAlgorithm(config.Checksum.Algorithm),
	}); err != nil {
		errs = multierr.Append(errs, err)
	}

	return errs
}

// BatchOptions converts the file level configuration into the options the
// batch service consumes.
func (c *Config) BatchOptions() *domain.BatchOptions {
	designation, _ := domain.ParseDesignation(c.Batch.System)

	return &domain.BatchOptions{
		Designation: designation,
		Operation:   domain.BatchOperation(c.Batch.Operation),
		Concurrency: c.Batch.Concurrency,
		ChunkSize:   c.Batch.ChunkSize,
		MaxFailures: c.Batch.MaxFailures,
		Compression: &domain.CompressionOptions{
			Level:              c.Compression.Level,
			EncoderConcurrency: c.Compression.EncoderConcurrency,
			DecoderConcurrency: c.Compression.DecoderConcurrency,
		},
		Checksum: &domain.ChecksumOptions{
			Enable:    c.Checksum.Enable,
			Algorithm: domain.ChecksumAlgorithm(c.Checksum.Algorithm),
		},
	}
}
