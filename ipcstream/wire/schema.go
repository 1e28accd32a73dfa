package wire

import (
	"github.com/apache/arrow-go/v18/arrow"
	flatbuffers "github.com/google/flatbuffers/go"
)

// BuildSchemaMessage encodes schema as a complete, framed Arrow IPC Schema
// message (§4.4 "Schema producer"). There is no message body: the
// returned bytes are the whole chunk.
func BuildSchemaMessage(schema *arrow.Schema) []byte {
	b := flatbuffers.NewBuilder(1024)

	fields := make([]arrow.Field, schema.NumFields())
	for i := range fields {
		fields[i] = schema.Field(i)
	}
	fieldsOff := buildFieldsVector(b, fields)

	b.StartObject(2)
	b.PrependUOffsetTSlot(1, fieldsOff, 0)
	b.PrependInt16Slot(0, endiannessLittle, endiannessLittle)
	schemaOff := b.EndObject()

	b.StartObject(5)
	b.PrependInt64Slot(3, 0, 0)
	b.PrependUOffsetTSlot(2, schemaOff, 0)
	b.PrependByteSlot(1, messageHeaderSchema, messageHeaderNone)
	b.PrependInt16Slot(0, metadataVersionV5, 0)
	msgOff := b.EndObject()

	return frameMessage(finish(b, msgOff))
}
