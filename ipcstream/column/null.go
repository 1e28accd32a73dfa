package column

import "github.com/apache/arrow-go/v18/arrow"

// nullConverter handles the null and unsupported logical types: no buffers
// are emitted at all, and the field node always reports every row as null
// (§4.2 "Null converter").
type nullConverter struct{}

func (nullConverter) ArrowFieldType() arrow.DataType { return arrow.Null }

func (nullConverter) NullCount(b Block) int { return b.PositionCount() }

func (nullConverter) Convert(b Block, out *BufferSet) error {
	return nil
}
