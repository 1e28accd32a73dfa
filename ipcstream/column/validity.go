package column

import "io"

// validityLength returns ceil(n/8), the byte length of a bit-packed
// validity buffer for n rows.
func validityLength(n int) int {
	return (n + 7) / 8
}

// writeValidity produces the LSB-first, bit-packed validity buffer for b:
// bit i is 1 when row i is valid (§4.2 "Validity buffer"). When b has no
// nulls at all, it takes the fast path described in §8 "Null handling":
// 0xFF repeated floor(N/8) times, then one trailing byte with the low
// N mod 8 bits set (omitted when N mod 8 == 0).
func writeValidity(b Block, n int) BufferWriter {
	return func(w io.Writer) (int, error) {
		buf := make([]byte, validityLength(n))
		if !b.MayHaveNulls() {
			full := n / 8
			for i := 0; i < full; i++ {
				buf[i] = 0xFF
			}
			if rem := n % 8; rem != 0 {
				buf[full] = byte(1<<uint(rem)) - 1
			}
		} else {
			for i := 0; i < n; i++ {
				if !b.IsNull(i) {
					buf[i/8] |= 1 << uint(i%8)
				}
			}
		}
		return w.Write(buf)
	}
}

// countNulls scans b for null rows, short-circuiting to 0 when b declares
// it may not have any (§4.2 "null_count").
func countNulls(b Block) int {
	if !b.MayHaveNulls() {
		return 0
	}
	n := 0
	for i := 0; i < b.PositionCount(); i++ {
		if b.IsNull(i) {
			n++
		}
	}
	return n
}
