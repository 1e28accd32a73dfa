// Package batch assembles one Page into a framed Arrow IPC RecordBatch
// message plus its body (§4.3 "Record-Batch Assembler"): it walks the
// page's columns, asks each column's converter for its field node and
// buffer descriptors/writers, and streams the result to a sink in a
// single pass.
package batch

import (
	"fmt"
	"io"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/column"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/wire"
)

const ipcAlignment = 8

func padding(n int64) int64 {
	rem := n % ipcAlignment
	if rem == 0 {
		return 0
	}
	return ipcAlignment - rem
}

var zeroPad [ipcAlignment]byte

// Assemble converts page's blocks into their buffer descriptors and
// writers, builds the record-batch header from the descriptor lengths
// alone, then writes the header followed by the body (each buffer's bytes
// padded to 8 bytes) to w. It returns the total number of bytes written.
//
// The header is fully determined before any converter writer runs — every
// BufferDescriptor length is known the moment Convert returns, so the
// buffer offset table needed for the header never depends on the body
// having been materialized (§9 "Deferred-bytes pattern").
func Assemble(page *column.Page, w io.Writer) (int, error) {
	nodes := make([]wire.FieldNode, 0, len(page.Columns))
	var buffers []wire.BufferMeta
	var writers []column.BufferWriter

	var offset int64
	for i, col := range page.Columns {
		block := page.Blocks[i]
		conv := col.Converter()

		nodes = append(nodes, wire.FieldNode{
			Length:    int64(block.PositionCount()),
			NullCount: int64(conv.NullCount(block)),
		})

		var bs column.BufferSet
		if err := conv.Convert(block, &bs); err != nil {
			return 0, fmt.Errorf("ipcstream/batch: column %q: %w", col.Name, err)
		}
		for j, d := range bs.Descriptors {
			length := int64(d.Length)
			buffers = append(buffers, wire.BufferMeta{Offset: offset, Length: length})
			offset += length + padding(length)
			writers = append(writers, bs.Writers[j])
		}
	}
	bodyLength := offset

	header := wire.BuildRecordBatchMessage(int64(page.PositionCount()), nodes, buffers, bodyLength)
	total := len(header)
	if _, err := w.Write(header); err != nil {
		return total, fmt.Errorf("%w: ipcstream/batch: writing record batch header: %w", ipcstream.ErrSinkWrite, err)
	}

	for i, writeBuf := range writers {
		n, err := writeBuf(w)
		if err != nil {
			return total, fmt.Errorf("%w: ipcstream/batch: writing buffer %d: %w", ipcstream.ErrSinkWrite, i, err)
		}
		if int64(n) != buffers[i].Length {
			return total, fmt.Errorf("ipcstream/batch: buffer %d wrote %d bytes, descriptor said %d",
				i, n, buffers[i].Length)
		}
		total += n
		if pad := padding(int64(n)); pad > 0 {
			if _, err := w.Write(zeroPad[:pad]); err != nil {
				return total, fmt.Errorf("%w: ipcstream/batch: padding buffer %d: %w", ipcstream.ErrSinkWrite, i, err)
			}
			total += int(pad)
		}
	}
	return total, nil
}
