// Package producer implements the chunked response producer sequence
// (§4.4): a Schema producer, zero or more Page producers, and an End
// producer, each emitting exactly one Arrow IPC message as one chunk.
package producer

import (
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
)

// ContentType is the MIME type reported for every producer in this
// package; it identifies the body as an Arrow IPC stream regardless of
// which producer emitted a given chunk.
const ContentType = "application/vnd.apache.arrow.stream"

// ChunkProducer emits exactly one chunk over its lifetime (§4.4). Callers
// must check IsDone before calling EncodeChunk again.
type ChunkProducer interface {
	// IsDone reports whether this producer has already emitted its chunk.
	IsDone() bool

	// EncodeChunk produces the one chunk this producer emits. sizeHint is
	// advisory only (§6 Open Question: size_hint is not honored by any
	// producer in this implementation). Calling EncodeChunk after IsDone
	// returns true is an error.
	EncodeChunk(sizeHint int, recycler *ipcstream.SinkRecycler) (*ipcstream.Chunk, error)

	// ContentType is the MIME type of the overall response this producer
	// contributes to.
	ContentType() string
}
