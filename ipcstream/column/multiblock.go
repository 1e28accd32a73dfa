package column

// MultiBlock models a block whose cells are multi-valued. This encoder has
// no multi-valued representation (spec Non-goals), so AsVector always
// fails; converting a page containing one is fatal (ErrUnsupportedBlockShape).
// Its Vector accessors are never called in practice — AsVector's ok=false
// means the assembler refuses to read through them at all.
type MultiBlock struct {
	N int
}

func (b *MultiBlock) PositionCount() int       { return b.N }
func (b *MultiBlock) MayHaveNulls() bool       { return false }
func (b *MultiBlock) IsNull(i int) bool        { return false }
func (b *MultiBlock) AsVector() (Vector, bool) { return nil, false }

func (b *MultiBlock) GetBool(i int) bool    { panic("column: MultiBlock has no scalar view") }
func (b *MultiBlock) GetI32(i int) int32    { panic("column: MultiBlock has no scalar view") }
func (b *MultiBlock) GetI64(i int) int64    { panic("column: MultiBlock has no scalar view") }
func (b *MultiBlock) GetU64(i int) uint64   { panic("column: MultiBlock has no scalar view") }
func (b *MultiBlock) GetF64(i int) float64  { panic("column: MultiBlock has no scalar view") }
func (b *MultiBlock) GetBytes(i int) []byte { panic("column: MultiBlock has no scalar view") }
