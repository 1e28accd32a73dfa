package producer

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/wire"
)

// SchemaProducer emits the single Schema message that must precede every
// page in the stream (§4.4 "Schema producer").
type SchemaProducer struct {
	schema *arrow.Schema
	done   bool
}

// NewSchemaProducer binds schema; it will be encoded on the first call to
// EncodeChunk.
func NewSchemaProducer(schema *arrow.Schema) *SchemaProducer {
	return &SchemaProducer{schema: schema}
}

func (p *SchemaProducer) IsDone() bool        { return p.done }
func (p *SchemaProducer) ContentType() string { return ContentType }

func (p *SchemaProducer) EncodeChunk(_ int, recycler *ipcstream.SinkRecycler) (*ipcstream.Chunk, error) {
	if p.done {
		return nil, fmt.Errorf("ipcstream/producer: schema producer already emitted its chunk")
	}
	buf := recycler.Get()
	buf.Write(wire.BuildSchemaMessage(p.schema))
	p.done = true
	return recycler.Wrap(buf), nil
}
