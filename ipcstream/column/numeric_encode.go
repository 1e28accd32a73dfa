package column

import (
	"encoding/binary"
	"math"
)

func encodeI32(b Block, i int, dst []byte) {
	binary.LittleEndian.PutUint32(dst, uint32(b.GetI32(i)))
}

func encodeI64(b Block, i int, dst []byte) {
	binary.LittleEndian.PutUint64(dst, uint64(b.GetI64(i)))
}

func encodeU64(b Block, i int, dst []byte) {
	binary.LittleEndian.PutUint64(dst, b.GetU64(i))
}

func encodeF64(b Block, i int, dst []byte) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(b.GetF64(i)))
}
