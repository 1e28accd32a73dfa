package column

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/convert"
)

// ValueTransform maps a row's raw bytes to the bytes actually stored in the
// values buffer. identityTransform covers keyword/text/binary WKB
// passthrough columns; the others apply §4.1's conversions.
type ValueTransform func(raw []byte) ([]byte, error)

// identityTransform copies raw, since GetBytes may reuse its backing array
// on the next call and the converter retains every row until the writers run.
func identityTransform(raw []byte) ([]byte, error) { return append([]byte(nil), raw...), nil }

func ipTransform(raw []byte) ([]byte, error) { return convert.ShortenIP(raw) }

func versionTransform(raw []byte) ([]byte, error) {
	s, err := convert.VersionToString(raw)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func sourceTransform(raw []byte) ([]byte, error) { return convert.SourceToJSON(raw) }

// varWidthConverter handles every variable-width logical type: keyword,
// text, ip, version, _source, and the geo/cartesian WKB passthroughs
// (§4.2 "Variable-width string/binary converter").
//
// ValueTransform errors follow the §7 ValueTransform policy: by default the
// cell's bytes become empty (a warning is the caller's business, not this
// package's); StrictValueTransform upgrades the error to fatal.
type varWidthConverter struct {
	fieldType arrow.DataType
	transform ValueTransform

	// StrictValueTransform, when true, makes a ValueTransform failure
	// abort the whole page instead of emitting an empty cell. A single
	// response must choose one policy and stick to it (§7).
	StrictValueTransform bool
}

func (c *varWidthConverter) ArrowFieldType() arrow.DataType { return c.fieldType }

func (c *varWidthConverter) NullCount(b Block) int { return countNulls(b) }

func (c *varWidthConverter) Convert(b Block, out *BufferSet) error {
	n := b.PositionCount()
	if _, ok := b.AsVector(); !ok {
		return fmt.Errorf("%w: %s column", ipcstream.ErrUnsupportedBlockShape, c.fieldType)
	}

	// Pre-compute the transformed row bytes once: the offsets buffer needs
	// the lengths, the values buffer needs the bytes, and transform errors
	// must be decided before either buffer's descriptor is appended.
	rows := make([][]byte, n)
	var total int64
	for i := 0; i < n; i++ {
		if b.MayHaveNulls() && b.IsNull(i) {
			continue
		}
		transformed, err := c.transform(b.GetBytes(i))
		if err != nil {
			if c.StrictValueTransform {
				return fmt.Errorf("%w: row %d: %w", ipcstream.ErrValueTransform, i, err)
			}
			transformed = nil
		}
		rows[i] = transformed
		total += int64(len(transformed))
	}
	if total > math.MaxInt32 {
		return fmt.Errorf("%w: cumulative length %d", ipcstream.ErrOffsetOverflow, total)
	}

	out.Append(validityLength(n), writeValidity(b, n))

	offsetsLen := (n + 1) * 4
	out.Append(offsetsLen, func(w io.Writer) (int, error) {
		buf := make([]byte, offsetsLen)
		var offset uint32
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(buf[i*4:i*4+4], offset)
			offset += uint32(len(rows[i]))
		}
		binary.LittleEndian.PutUint32(buf[n*4:n*4+4], offset)
		return w.Write(buf)
	})

	out.Append(int(total), func(w io.Writer) (int, error) {
		written := 0
		for i := 0; i < n; i++ {
			m, err := w.Write(rows[i])
			written += m
			if err != nil {
				return written, err
			}
		}
		return written, nil
	})
	return nil
}
