package wire

import flatbuffers "github.com/google/flatbuffers/go"

// FieldNode mirrors Message.fbs's FieldNode struct: one per column per
// page (§3 "Arrow Field Node").
type FieldNode struct {
	Length    int64
	NullCount int64
}

// BufferMeta mirrors Message.fbs's Buffer struct: the cumulative byte
// offset and length of one body buffer, computed purely from buffer
// lengths before any payload byte is written (§9).
type BufferMeta struct {
	Offset int64
	Length int64
}

func buildFieldNodesVector(b *flatbuffers.Builder, nodes []FieldNode) flatbuffers.UOffsetT {
	b.StartVector(16, len(nodes), 8)
	for i := len(nodes) - 1; i >= 0; i-- {
		b.Prep(8, 16)
		b.PrependInt64(nodes[i].NullCount)
		b.PrependInt64(nodes[i].Length)
	}
	return b.EndVector(len(nodes))
}

func buildBuffersVector(b *flatbuffers.Builder, buffers []BufferMeta) flatbuffers.UOffsetT {
	b.StartVector(16, len(buffers), 8)
	for i := len(buffers) - 1; i >= 0; i-- {
		b.Prep(8, 16)
		b.PrependInt64(buffers[i].Length)
		b.PrependInt64(buffers[i].Offset)
	}
	return b.EndVector(len(buffers))
}

// BuildRecordBatchMessage encodes a complete, framed Arrow IPC RecordBatch
// message header (§4.3). bodyLength is the already-computed, 8-byte-
// aligned total size of the body that will follow the returned bytes; the
// caller (the batch assembler) is responsible for writing that body
// immediately after.
func BuildRecordBatchMessage(numRows int64, nodes []FieldNode, buffers []BufferMeta, bodyLength int64) []byte {
	b := flatbuffers.NewBuilder(1024)

	nodesOff := buildFieldNodesVector(b, nodes)
	buffersOff := buildBuffersVector(b, buffers)

	b.StartObject(4)
	b.PrependUOffsetTSlot(2, buffersOff, 0)
	b.PrependUOffsetTSlot(1, nodesOff, 0)
	b.PrependInt64Slot(0, numRows, 0)
	batchOff := b.EndObject()

	b.StartObject(5)
	b.PrependInt64Slot(3, bodyLength, 0)
	b.PrependUOffsetTSlot(2, batchOff, 0)
	b.PrependByteSlot(1, messageHeaderRecordBatch, messageHeaderNone)
	b.PrependInt16Slot(0, metadataVersionV5, 0)
	msgOff := b.EndObject()

	return frameMessage(finish(b, msgOff))
}
