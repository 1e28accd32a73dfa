package column

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
)

// boolConverter handles the boolean logical type: both the validity and
// the values buffer are bit-packed LSB-first (§4.2).
type boolConverter struct{}

func (boolConverter) ArrowFieldType() arrow.DataType { return arrow.FixedWidthTypes.Boolean }

func (boolConverter) NullCount(b Block) int { return countNulls(b) }

func (boolConverter) Convert(b Block, out *BufferSet) error {
	n := b.PositionCount()
	if _, ok := b.AsVector(); !ok {
		return fmt.Errorf("%w: boolean column", ipcstream.ErrUnsupportedBlockShape)
	}

	out.Append(validityLength(n), writeValidity(b, n))
	out.Append(validityLength(n), func(w io.Writer) (int, error) {
		buf := make([]byte, validityLength(n))
		for i := 0; i < n; i++ {
			if b.MayHaveNulls() && b.IsNull(i) {
				continue
			}
			if b.GetBool(i) {
				buf[i/8] |= 1 << uint(i%8)
			}
		}
		return w.Write(buf)
	})
	return nil
}

// numericConverter handles every little-endian fixed-width numeric logical
// type: integer/counter_integer (int32), long/counter_long (int64),
// unsigned_long (uint64), double/counter_double (float64), and date (int64
// milliseconds, as Timestamp(ms) — see registry.go).
type numericConverter struct {
	fieldType arrow.DataType
	elemSize  int
	encode    func(b Block, i int, dst []byte)
}

func (c numericConverter) ArrowFieldType() arrow.DataType { return c.fieldType }

func (c numericConverter) NullCount(b Block) int { return countNulls(b) }

func (c numericConverter) Convert(b Block, out *BufferSet) error {
	n := b.PositionCount()
	if _, ok := b.AsVector(); !ok {
		return fmt.Errorf("%w: %s column", ipcstream.ErrUnsupportedBlockShape, c.fieldType)
	}

	out.Append(validityLength(n), writeValidity(b, n))

	length := c.elemSize * n
	out.Append(length, func(w io.Writer) (int, error) {
		buf := make([]byte, length)
		for i := 0; i < n; i++ {
			if b.MayHaveNulls() && b.IsNull(i) {
				continue
			}
			c.encode(b, i, buf[i*c.elemSize:(i+1)*c.elemSize])
		}
		return w.Write(buf)
	})
	return nil
}
