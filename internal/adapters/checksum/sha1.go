package checksum

import (
	sha1_lib "crypto/sha1"
	"encoding/hex"
)

type sha1 struct {
	name string
}

func NewSHA1() *sha1 {
	return &sha1{name: string(SHA1)}
}

func (s *sha1) Sum(data []byte) string {
	sum := sha1_lib.Sum(data)
	return hex.EncodeToString(sum[:])
}

func (s *sha1) Name() string {
	return s.name
}
