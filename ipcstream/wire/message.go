package wire

import flatbuffers "github.com/google/flatbuffers/go"

// frameMessage wraps a finished flatbuffer Message payload in the Arrow
// IPC encapsulated-message framing: a 4-byte continuation indicator, a
// 4-byte little-endian metadata size, the flatbuffer bytes, and zero
// padding so that (8 + len(payload)+padding) is a multiple of 8 (§3, §9).
func frameMessage(payload []byte) []byte {
	pad := padding(int64(len(payload)))
	metadataSize := int32(int64(len(payload)) + pad)

	out := make([]byte, 0, 8+len(payload)+int(pad))
	out = append(out, 0xFF, 0xFF, 0xFF, 0xFF)
	out = append(out,
		byte(metadataSize),
		byte(metadataSize>>8),
		byte(metadataSize>>16),
		byte(metadataSize>>24),
	)
	out = append(out, payload...)
	for i := int64(0); i < pad; i++ {
		out = append(out, 0)
	}
	return out
}

// EndOfStream returns the Arrow IPC stream end-of-stream marker: the
// continuation indicator followed by a zero-length field and nothing else
// (§4.4 "End producer", §8 "Framing invariants").
func EndOfStream() []byte {
	out := make([]byte, len(endOfStream))
	copy(out, endOfStream[:])
	return out
}

// finish completes b with root at off and returns the finished flatbuffer
// bytes (without Arrow's own framing, which frameMessage adds separately —
// Arrow does not use flatbuffers' built-in size-prefix convention).
func finish(b *flatbuffers.Builder, off flatbuffers.UOffsetT) []byte {
	b.Finish(off)
	raw := b.FinishedBytes()
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}
