// Package ipcstream encodes columnar query results into the Apache Arrow
// IPC Streaming format as a sequence of independently-producible byte
// chunks suitable for an HTTP chunked transfer.
//
// Sub-packages:
//   - column:   block converters, the logical type registry, Page/Column
//   - batch:    the record-batch assembler
//   - producer: the chunked response producer sequence
package ipcstream

import "errors"

// Error kinds from §7. Callers distinguish them with errors.Is.
var (
	// ErrUnsupportedType is returned at column construction when a logical
	// type name is not in the registry.
	ErrUnsupportedType = errors.New("ipcstream: unsupported logical type")

	// ErrUnsupportedBlockShape is returned when a block has no flat vector
	// view (a multi-valued cell). Fatal for the response.
	ErrUnsupportedBlockShape = errors.New("ipcstream: block has no flat vector view")

	// ErrOffsetOverflow is returned when a variable-width column's
	// cumulative byte length exceeds 2^31-1. Fatal for the response.
	ErrOffsetOverflow = errors.New("ipcstream: offsets buffer overflowed 32 bits")

	// ErrValueTransform is returned when a value transform (version, source,
	// ip) rejects its input and strict mode is enabled.
	ErrValueTransform = errors.New("ipcstream: value transform rejected input")

	// ErrSinkWrite wraps a downstream I/O failure while writing a chunk.
	ErrSinkWrite = errors.New("ipcstream: sink write failed")
)
