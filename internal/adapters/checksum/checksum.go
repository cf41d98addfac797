// Package checksum implements the Checksum port over the standard hash
// functions. Digests tie batch reports to the exact bytes processed.
package checksum

import (
	"fmt"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/internal/core/ports"
)

const (
	// CRC32IEEE uses the IEEE polynomial for CRC32 digests
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC64ISO uses the ISO polynomial for CRC64 digests
	CRC64ISO domain.ChecksumAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 digests
	CRC64ECMA domain.ChecksumAlgorithm = "crc64-ecma"

	// SHA1 provides SHA-1 digests (160-bit)
	SHA1 domain.ChecksumAlgorithm = "sha1"

	// SHA256 provides SHA-256 digests (256-bit)
	SHA256 domain.ChecksumAlgorithm = "sha256"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Enable:    true,
		Algorithm: CRC32IEEE,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if !input.Enable {
		return nil
	}

	switch input.Algorithm {
	case "", CRC32IEEE, CRC64ISO, CRC64ECMA, SHA1, SHA256:
		return nil
	}
	return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
}

// New builds the digest implementation for the given algorithm. An empty
// algorithm selects CRC32IEEE.
func New(algorithm domain.ChecksumAlgorithm) (ports.Checksum, error) {
	switch algorithm {
	case "", CRC32IEEE:
		return NewCRC32IEEE(), nil
	case CRC64ISO:
		return NewCRC64ISO(), nil
	case CRC64ECMA:
		return NewCRC64ECMA(), nil
	case SHA1:
		return NewSHA1(), nil
	case SHA256:
		return NewSHA256(), nil
	}
	return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
}
