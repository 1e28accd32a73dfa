package producer

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/column"
)

// ChunkedResponse sequences a SchemaProducer, zero or more PageProducers,
// and an EndProducer into the full ordered chunk stream for one query
// result (§4.4). Even a response with zero pages still emits Schema then
// End — the "empty response" case.
type ChunkedResponse struct {
	producers []ChunkProducer
	next      int
}

// NewChunkedResponse builds the producer sequence for schema and pages, in
// order.
func NewChunkedResponse(schema *arrow.Schema, pages []*column.Page) *ChunkedResponse {
	producers := make([]ChunkProducer, 0, len(pages)+2)
	producers = append(producers, NewSchemaProducer(schema))
	for _, p := range pages {
		producers = append(producers, NewPageProducer(p))
	}
	producers = append(producers, NewEndProducer())
	return &ChunkedResponse{producers: producers}
}

// NewPrefetchedChunkedResponse assembles every page concurrently up front
// via a Prefetcher, then returns a ChunkedResponse that serves the
// precomputed chunks. Use this when pages are independent and numerous
// enough that concurrent assembly beats encoding them one at a time on
// the pull path.
func NewPrefetchedChunkedResponse(schema *arrow.Schema, pages []*column.Page, workers int, recycler *ipcstream.SinkRecycler) (*ChunkedResponse, error) {
	chunks, err := NewPrefetcher(workers, recycler).EncodeAll(pages)
	if err != nil {
		return nil, err
	}
	producers := make([]ChunkProducer, 0, len(chunks)+2)
	producers = append(producers, NewSchemaProducer(schema))
	for _, c := range chunks {
		producers = append(producers, NewPrecomputedProducer(c))
	}
	producers = append(producers, NewEndProducer())
	return &ChunkedResponse{producers: producers}, nil
}

// IsDone reports whether every producer in the sequence has emitted its
// chunk.
func (r *ChunkedResponse) IsDone() bool {
	return r.next >= len(r.producers)
}

// ContentType is the MIME type of the overall response.
func (r *ChunkedResponse) ContentType() string { return ContentType }

// Next pulls the next chunk in sequence, advancing past any producer that
// reports IsDone already true. Returns nil, nil once the whole sequence is
// exhausted.
func (r *ChunkedResponse) Next(recycler *ipcstream.SinkRecycler) (*ipcstream.Chunk, error) {
	for r.next < len(r.producers) && r.producers[r.next].IsDone() {
		r.next++
	}
	if r.next >= len(r.producers) {
		return nil, nil
	}
	chunk, err := r.producers[r.next].EncodeChunk(0, recycler)
	if err != nil {
		return nil, err
	}
	r.next++
	return chunk, nil
}
