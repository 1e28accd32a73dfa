package column

import "github.com/apache/arrow-go/v18/arrow"

// Converter is the per-logical-type strategy (§4.2). Implementations are a
// closed set of variants dispatched from the registry by logical type name
// rather than an open interface hierarchy, per §9 "Per-type strategy
// dispatch" — exhaustiveness is checkable by reading registry.go.
type Converter interface {
	// ArrowFieldType is the Arrow logical/physical type used in the Schema
	// message.
	ArrowFieldType() arrow.DataType

	// NullCount scans block and returns its null count, short-circuiting to
	// 0 when the block declares it may not have any.
	NullCount(block Block) int

	// Convert appends the buffer descriptors and matching writers for
	// block to out. Every writer, once invoked, must produce exactly the
	// byte length recorded in its paired descriptor.
	Convert(block Block, out *BufferSet) error
}
