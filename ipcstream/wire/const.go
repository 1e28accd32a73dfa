// Package wire hand-encodes the Apache Arrow IPC message flatbuffers
// (Schema.fbs / Message.fbs) directly against google/flatbuffers/go,
// rather than through a higher-level Arrow library builder. This is the
// component that actually produces the bytes described in §9 "Deferred-
// bytes pattern": the record-batch header is built purely from buffer
// length bookkeeping (column.BufferDescriptor), before any payload byte
// has been written, and the body is appended afterward straight from the
// paired writers (§4.3).
//
// The flatbuffer layouts here mirror Arrow's own Schema.fbs/Message.fbs —
// field order and union discriminator values are part of the wire format
// and must match a reference Arrow reader exactly; they are not an
// internal implementation detail this package is free to renumber.
package wire

// metadataVersionV5 is the MetadataVersion enum value this encoder writes.
// V5 is the version every current Arrow implementation emits.
const metadataVersionV5 int16 = 4

// messageHeader union discriminators (Message.fbs MessageHeader).
const (
	messageHeaderNone        uint8 = 0
	messageHeaderSchema      uint8 = 1
	messageHeaderDictBatch   uint8 = 2
	messageHeaderRecordBatch uint8 = 3
)

// fieldType union discriminators (Schema.fbs Type). Only the variants this
// encoder emits are listed; the numbering of the ones it doesn't use still
// has to be skipped correctly since it's a shared wire enumeration.
const (
	typeNone          uint8 = 0
	typeNull          uint8 = 1
	typeInt           uint8 = 2
	typeFloatingPoint uint8 = 3
	typeBinary        uint8 = 4
	typeUtf8          uint8 = 5
	typeBool          uint8 = 6
	typeTimestamp     uint8 = 10
)

// floatingPointPrecision (Schema.fbs Precision).
const precisionDouble int16 = 2

// timeUnit (Schema.fbs TimeUnit).
const timeUnitMillisecond int16 = 1

// endianness (Schema.fbs Endianness). This encoder only ever runs on
// little-endian wire data (§3 "Integer encodings are little-endian"), so it
// always declares Little.
const endiannessLittle int16 = 0

// endOfStream is the end-of-stream marker (the continuation indicator
// followed by a zero length), per the Arrow IPC streaming framing (grounded on the reference Go Arrow IPC implementation
// — see other_examples/influxdata-influxdb__ipc.go's kIPCContToken/kEOS).
var endOfStream = [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}

const ipcAlignment = 8

// padding returns the number of zero bytes needed to round n up to the
// next multiple of ipcAlignment.
func padding(n int64) int64 {
	rem := n % ipcAlignment
	if rem == 0 {
		return 0
	}
	return ipcAlignment - rem
}
