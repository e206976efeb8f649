package hashchain

import "math/bits"

// BitLength returns the number of bits required to represent num.
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// Log2Uint64 efficiently computes log base 2 of num.
//
// It is defined only for num > 0. The length validation in Generate
// guarantees this for every call site in this package; a zero argument is a
// caller contract violation, not a reportable error.
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}
