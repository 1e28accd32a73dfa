package column

// MemBlock is a simple in-memory Block implementation, used by the demo
// server and by tests in place of a real query-engine block. At most one
// of the value slices is populated, matching the column's logical type
// (none for NewNullBlock); a nil nulls slice means MayHaveNulls is false.
type MemBlock struct {
	n     int
	nulls []bool

	bools []bool
	i32s  []int32
	i64s  []int64
	u64s  []uint64
	f64s  []float64
	bytes [][]byte
}

// NewBoolBlock builds a MemBlock over bool values. nulls may be nil.
func NewBoolBlock(values []bool, nulls []bool) *MemBlock {
	return &MemBlock{n: len(values), nulls: nulls, bools: values}
}

// NewI32Block builds a MemBlock over int32 values. nulls may be nil.
func NewI32Block(values []int32, nulls []bool) *MemBlock {
	return &MemBlock{n: len(values), nulls: nulls, i32s: values}
}

// NewI64Block builds a MemBlock over int64 values. nulls may be nil.
func NewI64Block(values []int64, nulls []bool) *MemBlock {
	return &MemBlock{n: len(values), nulls: nulls, i64s: values}
}

// NewU64Block builds a MemBlock over uint64 values. nulls may be nil.
func NewU64Block(values []uint64, nulls []bool) *MemBlock {
	return &MemBlock{n: len(values), nulls: nulls, u64s: values}
}

// NewF64Block builds a MemBlock over float64 values. nulls may be nil.
func NewF64Block(values []float64, nulls []bool) *MemBlock {
	return &MemBlock{n: len(values), nulls: nulls, f64s: values}
}

// NewBytesBlock builds a MemBlock over variable-width byte values (used for
// keyword/text/ip/version/_source/geo/cartesian columns). nulls may be nil.
func NewBytesBlock(values [][]byte, nulls []bool) *MemBlock {
	return &MemBlock{n: len(values), nulls: nulls, bytes: values}
}

// NewNullBlock builds an all-null MemBlock of n rows, for the null/
// unsupported logical types.
func NewNullBlock(n int) *MemBlock {
	nulls := make([]bool, n)
	for i := range nulls {
		nulls[i] = true
	}
	return &MemBlock{n: n, nulls: nulls}
}

func (b *MemBlock) PositionCount() int { return b.n }

func (b *MemBlock) MayHaveNulls() bool { return b.nulls != nil }

func (b *MemBlock) IsNull(i int) bool {
	if b.nulls == nil {
		return false
	}
	return b.nulls[i]
}

func (b *MemBlock) GetBool(i int) bool    { return b.bools[i] }
func (b *MemBlock) GetI32(i int) int32    { return b.i32s[i] }
func (b *MemBlock) GetI64(i int) int64    { return b.i64s[i] }
func (b *MemBlock) GetU64(i int) uint64   { return b.u64s[i] }
func (b *MemBlock) GetF64(i int) float64  { return b.f64s[i] }
func (b *MemBlock) GetBytes(i int) []byte { return b.bytes[i] }

// AsVector always succeeds for an in-memory block: MemBlock never models a
// multi-valued cell. MultiBlock (see multiblock.go) is the shape the
// encoder rejects.
func (b *MemBlock) AsVector() (Vector, bool) {
	return b, true
}
