// Package column implements the block converters and logical type registry
// that turn engine-native column blocks into Arrow field types and buffer
// byte streams (§4.2, §4.5 of the encoder this package belongs to).
package column

// Vector is the typed primitive reader surface a column exposes. Only the
// accessor matching the column's logical type is ever called by a
// converter; reads at a null position are undefined (callers must consult
// IsNull first when MayHaveNulls is true).
type Vector interface {
	GetBool(i int) bool
	GetI32(i int) int32
	GetI64(i int) int64
	GetU64(i int) uint64
	GetF64(i int) float64

	// GetBytes returns the raw bytes backing row i. Implementations may
	// reuse the returned slice's backing array on the next call
	// (scratch-buffer semantics); callers that need to retain the bytes
	// past the next call must copy them.
	GetBytes(i int) []byte
}

// Block is the capability set the query engine must expose for a column's
// in-memory representation (§3). It is opaque to this package beyond these
// methods: no converter mutates a Block.
type Block interface {
	Vector

	// PositionCount returns the number of rows in the block.
	PositionCount() int

	// MayHaveNulls reports whether any row might be null. When false,
	// IsNull is never consulted and null-counting is skipped entirely.
	MayHaveNulls() bool

	// IsNull reports whether row i is null. Only meaningful when
	// MayHaveNulls is true.
	IsNull(i int) bool

	// AsVector returns a flat view, present iff the block has no
	// multi-valued cells; a block with nulls still reports ok=true.
	// Converters only consult ok: ok=false is fatal for the page (§4.2
	// "Rejected block shapes"), even though the block may still answer
	// IsNull/MayHaveNulls.
	AsVector() (vec Vector, ok bool)
}
