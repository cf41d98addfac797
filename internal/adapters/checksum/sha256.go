package checksum

import (
	sha256_lib "crypto/sha256"
	"encoding/hex"
)

type sha256 struct {
	name string
}

func NewSHA256() *sha256 {
	return &sha256{name: string(SHA256)}
}

func (s *sha256) Sum(data []byte) string {
	sum := sha256_lib.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (s *sha256) Name() string {
	return s.name
}
