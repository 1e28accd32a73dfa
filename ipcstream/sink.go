package ipcstream

import (
	"bytes"
	"sync"
)

// Chunk is a releasable byte reference: a contiguous sequence of bytes plus
// a deterministic, idempotent release hook. The release hook may be invoked
// at most once and is always invoked exactly once by the transport, whether
// the chunk was consumed normally or abandoned.
type Chunk struct {
	Bytes   []byte
	release func()
	once    sync.Once
}

// Release returns the underlying sink to its recycler. Safe to call more
// than once; only the first call has any effect.
func (c *Chunk) Release() {
	if c == nil || c.release == nil {
		return
	}
	c.once.Do(c.release)
}

// SinkRecycler hands out reusable byte buffers so that a chunk producer
// reuses a released buffer instead of allocating a fresh one when the pool
// holds one. It is backed by sync.Pool and is safe for concurrent use;
// Prefetcher shares one recycler across its worker goroutines.
type SinkRecycler struct {
	pool sync.Pool
}

// NewSinkRecycler creates an empty recycler.
func NewSinkRecycler() *SinkRecycler {
	return &SinkRecycler{
		pool: sync.Pool{
			New: func() any { return new(bytes.Buffer) },
		},
	}
}

// Get returns a zero-length buffer, reused from a prior Put when available.
func (r *SinkRecycler) Get() *bytes.Buffer {
	buf := r.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool for reuse.
func (r *SinkRecycler) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	r.pool.Put(buf)
}

// Wrap takes ownership of buf and returns a Chunk whose bytes are buf's
// contents and whose release hook returns buf to r exactly once. The
// caller must not touch buf again after calling Wrap.
func (r *SinkRecycler) Wrap(buf *bytes.Buffer) *Chunk {
	b := buf.Bytes()
	return &Chunk{
		Bytes: b,
		release: func() {
			r.Put(buf)
		},
	}
}
