package wire

import (
	"github.com/apache/arrow-go/v18/arrow"
	flatbuffers "github.com/google/flatbuffers/go"
)

// buildField encodes one Arrow Field: name (0), nullable (1), type_type
// (2), type (3), children (5, always an empty vector). dictionary/
// custom_metadata are left unset — this encoder never emits dictionaries
// or nested fields (Non-goals).
func buildField(b *flatbuffers.Builder, f arrow.Field) flatbuffers.UOffsetT {
	typeTypeByte, typeOff := buildFieldType(b, f.Type)
	nameOff := b.CreateString(f.Name)
	b.StartVector(flatbuffers.SizeUOffsetT, 0, flatbuffers.SizeUOffsetT)
	childrenOff := b.EndVector(0)

	b.StartObject(6)
	b.PrependUOffsetTSlot(5, childrenOff, 0)
	b.PrependUOffsetTSlot(3, typeOff, 0)
	b.PrependByteSlot(2, typeTypeByte, 0)
	b.PrependBoolSlot(1, f.Nullable, false)
	b.PrependUOffsetTSlot(0, nameOff, 0)
	return b.EndObject()
}

// buildFieldsVector encodes the Schema message's `fields` vector: each
// Field must be fully built (name string + type table + Field table)
// before the vector itself is started, so this builds every field first
// and only then opens the vector and appends offsets back-to-front, per
// flatbuffers' backward-growing buffer convention.
func buildFieldsVector(b *flatbuffers.Builder, fields []arrow.Field) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, len(fields))
	for i, f := range fields {
		offsets[i] = buildField(b, f)
	}

	b.StartVector(flatbuffers.SizeUOffsetT, len(fields), flatbuffers.SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(fields))
}
