package wire

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	flatbuffers "github.com/google/flatbuffers/go"
)

// buildFieldType encodes dt as one of Schema.fbs's Type union members,
// returning the union discriminator byte and the table's offset. Only the
// subset of Arrow types this encoder's registry (§4.5) produces is
// supported; anything else is a programming error, not a runtime input
// error, since dt always comes from this encoder's own converters.
func buildFieldType(b *flatbuffers.Builder, dt arrow.DataType) (uint8, flatbuffers.UOffsetT) {
	switch dt.ID() {
	case arrow.NULL:
		return typeNull, buildNull(b)
	case arrow.BOOL:
		return typeBool, buildBool(b)
	case arrow.INT32:
		return typeInt, buildInt(b, 32, true)
	case arrow.INT64:
		return typeInt, buildInt(b, 64, true)
	case arrow.UINT64:
		return typeInt, buildInt(b, 64, false)
	case arrow.FLOAT64:
		return typeFloatingPoint, buildFloatingPoint(b)
	case arrow.STRING:
		return typeUtf8, buildUtf8(b)
	case arrow.BINARY:
		return typeBinary, buildBinary(b)
	case arrow.TIMESTAMP:
		ts := dt.(*arrow.TimestampType)
		return typeTimestamp, buildTimestamp(b, ts.TimeZone)
	default:
		panic(fmt.Sprintf("wire: unsupported arrow type %s", dt))
	}
}

// table Null {}
func buildNull(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(0)
	return b.EndObject()
}

// table Bool {}
func buildBool(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(0)
	return b.EndObject()
}

// table Utf8 {}
func buildUtf8(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(0)
	return b.EndObject()
}

// table Binary {}
func buildBinary(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(0)
	return b.EndObject()
}

// table Int { bitWidth: int (0); is_signed: bool (1) }
func buildInt(b *flatbuffers.Builder, bitWidth int32, signed bool) flatbuffers.UOffsetT {
	b.StartObject(2)
	b.PrependBoolSlot(1, signed, false)
	b.PrependInt32Slot(0, bitWidth, 0)
	return b.EndObject()
}

// table FloatingPoint { precision: Precision (0) }
func buildFloatingPoint(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt16Slot(0, precisionDouble, 0)
	return b.EndObject()
}

// table Timestamp { unit: TimeUnit (0); timezone: string (1) }
//
// This encoder only ever produces millisecond timestamps (§4.5 "date").
func buildTimestamp(b *flatbuffers.Builder, timezone string) flatbuffers.UOffsetT {
	var tzOff flatbuffers.UOffsetT
	if timezone != "" {
		tzOff = b.CreateString(timezone)
	}
	b.StartObject(2)
	if tzOff != 0 {
		b.PrependUOffsetTSlot(1, tzOff, 0)
	}
	b.PrependInt16Slot(0, timeUnitMillisecond, 0)
	return b.EndObject()
}
