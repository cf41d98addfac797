// Package pool provides reusable byte buffers for assembling batch output
// files and reports.
package pool

import (
	"bytes"
	"sync"
)

// BufferPool manages a pool of byte buffers sized for line assembly.
type BufferPool struct {
	size int       // Initial capacity of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool. Buffers start at the given capacity and grow
// with the output they assemble.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
	}
}

// Retrieves a clean buffer from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Returns a buffer to the pool. Buffers that grew far beyond the base
// capacity are dropped; output files can be orders of magnitude larger
// than the lines that follow them.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf.Cap() > bp.size*8 {
		return
	}

	buf.Reset()
	bp.pool.Put(buf)
}
