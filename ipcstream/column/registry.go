package column

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
)

// dateMillisType is the Arrow type used for the "date" logical type: a
// millisecond Timestamp with no time zone. The source this encoder was
// distilled from disagreed between Timestamp(ms) and DateMilli for this
// column (an explicitly unresolved open question); this repo picks
// Timestamp(ms, tz="") because a date value is an instant with a
// time-of-day component, which DateMilli would not convey — see
// DESIGN.md.
var dateMillisType = &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: ""}

// registry is the static table mapping logical type names to converters
// (§4.5, §6). It is built once at package init and never mutated.
var registry = map[string]Converter{
	"null":        nullConverter{},
	"unsupported": nullConverter{},

	"boolean": boolConverter{},

	"integer":         numericConverter{fieldType: arrow.PrimitiveTypes.Int32, elemSize: 4, encode: encodeI32},
	"counter_integer": numericConverter{fieldType: arrow.PrimitiveTypes.Int32, elemSize: 4, encode: encodeI32},

	"long":         numericConverter{fieldType: arrow.PrimitiveTypes.Int64, elemSize: 8, encode: encodeI64},
	"counter_long": numericConverter{fieldType: arrow.PrimitiveTypes.Int64, elemSize: 8, encode: encodeI64},

	"unsigned_long": numericConverter{fieldType: arrow.PrimitiveTypes.Uint64, elemSize: 8, encode: encodeU64},

	"double":         numericConverter{fieldType: arrow.PrimitiveTypes.Float64, elemSize: 8, encode: encodeF64},
	"counter_double": numericConverter{fieldType: arrow.PrimitiveTypes.Float64, elemSize: 8, encode: encodeF64},

	"date": numericConverter{fieldType: dateMillisType, elemSize: 8, encode: encodeI64},

	"keyword": &varWidthConverter{fieldType: arrow.BinaryTypes.String, transform: identityTransform},
	"text":    &varWidthConverter{fieldType: arrow.BinaryTypes.String, transform: identityTransform},

	"ip": &varWidthConverter{fieldType: arrow.BinaryTypes.Binary, transform: ipTransform},

	"version": &varWidthConverter{fieldType: arrow.BinaryTypes.String, transform: versionTransform},

	"geo_point":         &varWidthConverter{fieldType: arrow.BinaryTypes.Binary, transform: identityTransform},
	"geo_shape":         &varWidthConverter{fieldType: arrow.BinaryTypes.Binary, transform: identityTransform},
	"cartesian_point":   &varWidthConverter{fieldType: arrow.BinaryTypes.Binary, transform: identityTransform},
	"cartesian_shape":   &varWidthConverter{fieldType: arrow.BinaryTypes.Binary, transform: identityTransform},

	"_source": &varWidthConverter{fieldType: arrow.BinaryTypes.String, transform: sourceTransform},
}

// Lookup resolves a logical type name to its Converter, failing fast with
// ErrUnsupportedType for an unknown name (§4.5, §6, §7).
func Lookup(logicalType string) (Converter, error) {
	c, ok := registry[logicalType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ipcstream.ErrUnsupportedType, logicalType)
	}
	return c, nil
}
