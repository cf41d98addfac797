package checksum

import (
	"fmt"
	"hash/crc64"
)

type crc64ISO struct {
	name  string
	table *crc64.Table
}

func NewCRC64ISO() *crc64ISO {
	return &crc64ISO{
		name:  string(CRC64ISO),
		table: crc64.MakeTable(crc64.ISO),
	}
}

func (c *crc64ISO) Sum(data []byte) string {
	return fmt.Sprintf("%016x", crc64.Checksum(data, c.table))
}

func (c *crc64ISO) Name() string {
	return c.name
}
