package producer

import (
	"fmt"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/batch"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/column"
)

// PageProducer emits one RecordBatch message for a single page (§4.4
// "Page producer(s)"). A failure here — a multi-valued cell, an offset
// overflow, a strict value-transform rejection — is fatal for the whole
// response, per §7.
type PageProducer struct {
	page *column.Page
	done bool
}

// NewPageProducer binds page; it will be assembled on the first call to
// EncodeChunk.
func NewPageProducer(page *column.Page) *PageProducer {
	return &PageProducer{page: page}
}

func (p *PageProducer) IsDone() bool        { return p.done }
func (p *PageProducer) ContentType() string { return ContentType }

func (p *PageProducer) EncodeChunk(_ int, recycler *ipcstream.SinkRecycler) (*ipcstream.Chunk, error) {
	if p.done {
		return nil, fmt.Errorf("ipcstream/producer: page producer already emitted its chunk")
	}
	buf := recycler.Get()
	if _, err := batch.Assemble(p.page, buf); err != nil {
		recycler.Put(buf)
		return nil, err
	}
	p.done = true
	return recycler.Wrap(buf), nil
}

// PrecomputedProducer serves a chunk that has already been encoded, e.g.
// by a Prefetcher. EncodeChunk ignores sizeHint and recycler entirely: the
// chunk was produced ahead of time and simply handed over once.
type PrecomputedProducer struct {
	chunk *ipcstream.Chunk
	done  bool
}

// NewPrecomputedProducer wraps an already-encoded chunk.
func NewPrecomputedProducer(chunk *ipcstream.Chunk) *PrecomputedProducer {
	return &PrecomputedProducer{chunk: chunk}
}

func (p *PrecomputedProducer) IsDone() bool        { return p.done }
func (p *PrecomputedProducer) ContentType() string { return ContentType }

func (p *PrecomputedProducer) EncodeChunk(_ int, _ *ipcstream.SinkRecycler) (*ipcstream.Chunk, error) {
	if p.done {
		return nil, fmt.Errorf("ipcstream/producer: precomputed producer already emitted its chunk")
	}
	p.done = true
	return p.chunk, nil
}
