package producer

import (
	"fmt"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/wire"
)

// EndProducer emits the stream's closing end-of-stream marker (§4.4 "End
// producer") and nothing else.
type EndProducer struct {
	done bool
}

// NewEndProducer returns a fresh end-of-stream producer.
func NewEndProducer() *EndProducer { return &EndProducer{} }

func (p *EndProducer) IsDone() bool        { return p.done }
func (p *EndProducer) ContentType() string { return ContentType }

func (p *EndProducer) EncodeChunk(_ int, recycler *ipcstream.SinkRecycler) (*ipcstream.Chunk, error) {
	if p.done {
		return nil, fmt.Errorf("ipcstream/producer: end producer already emitted its chunk")
	}
	buf := recycler.Get()
	buf.Write(wire.EndOfStream())
	p.done = true
	return recycler.Wrap(buf), nil
}
