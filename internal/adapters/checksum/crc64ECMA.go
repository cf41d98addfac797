package checksum

import (
	"fmt"
	"hash/crc64"
)

type crc64ECMA struct {
	name  string
	table *crc64.Table
}

func NewCRC64ECMA() *crc64ECMA {
	return &crc64ECMA{
		name:  string(CRC64ECMA),
		table: crc64.MakeTable(crc64.ECMA),
	}
}

func (c *crc64ECMA) Sum(data []byte) string {
	return fmt.Sprintf("%016x", crc64.Checksum(data, c.table))
}

func (c *crc64ECMA) Name() string {
	return c.name
}
