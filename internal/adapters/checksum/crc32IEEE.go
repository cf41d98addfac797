package checksum

import (
	"fmt"
	"hash/crc32"
)

type crc32IEEE struct {
	name  string
	table *crc32.Table
}

func NewCRC32IEEE() *crc32IEEE {
	return &crc32IEEE{
		name:  string(CRC32IEEE),
		table: crc32.MakeTable(crc32.IEEE),
	}
}

func (c *crc32IEEE) Sum(data []byte) string {
	return fmt.Sprintf("%08x", crc32.Checksum(data, c.table))
}

func (c *crc32IEEE) Name() string {
	return c.name
}
