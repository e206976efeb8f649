package hashchain

// PebblePositions returns the checkpoint position set Generate captures for
// a chain of the given length. This is completely deterministic given a
// valid length. If the length is not a power of two, this function returns
// nil.
//
// It is guaranteed that the positions are listed in ascending order,
// [2, 4, ..., length]. A chain of length 1 has no capturable position and
// yields an empty set.
func PebblePositions(length uint64) []uint64 {
	if !IsPow2(length) {
		return nil
	}
	return Powers(Log2Uint64(length))
}
