package column

import "io"

// BufferDescriptor carries only a buffer's length, never its bytes — it
// exists so the record-batch assembler can compute the batch header before
// a single payload byte has been produced (§3 "Buffer Descriptor").
type BufferDescriptor struct {
	Length int
}

// BufferWriter is a deferred closure that, when invoked, writes exactly the
// bytes for one buffer to w and returns the count written. For every
// BufferDescriptor appended to a BufferSet there is exactly one matching
// BufferWriter, in the same order (§3 invariant).
type BufferWriter func(w io.Writer) (int, error)

// BufferSet accumulates the descriptor/writer pairs a Converter appends
// while converting one block.
type BufferSet struct {
	Descriptors []BufferDescriptor
	Writers     []BufferWriter
}

// Append adds one buffer of the given length with its matching writer.
func (s *BufferSet) Append(length int, w BufferWriter) {
	s.Descriptors = append(s.Descriptors, BufferDescriptor{Length: length})
	s.Writers = append(s.Writers, w)
}

// FieldNode is the per-column-per-page Arrow field node (§3).
type FieldNode struct {
	Length    int
	NullCount int
}
