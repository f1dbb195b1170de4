package gql

import (
	"bytes"
	"sync"
)

var (
	smallBufferPool = sync.Pool{
		New: func() any {
			return bytes.NewBuffer(make([]byte, 0, 1024))
		},
	}

	largeBufferPool = sync.Pool{
		New: func() any {
			return bytes.NewBuffer(make([]byte, 0, 8192))
		},
	}
)

// getBuffer returns a reset buffer sized for a request body of roughly estimatedSize bytes.
func getBuffer(estimatedSize int) *bytes.Buffer {
	if estimatedSize <= 1024 {
		return smallBufferPool.Get().(*bytes.Buffer)
	}
	return largeBufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	if buf.Cap() <= 1024 {
		smallBufferPool.Put(buf)
		return
	}
	// oversized buffers are dropped instead of pinning memory in the pool
	if buf.Cap() > 1<<20 {
		return
	}
	largeBufferPool.Put(buf)
}
