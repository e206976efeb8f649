package hashchain

// IsPow2 determines if the unsigned value length is a perfect power of 2.
func IsPow2(length uint64) bool {
	if length == 0 {
		return false
	}
	return length&(length-1) == 0
}

// Powers returns the ascending powers of two [2, 4, ..., 2^count].
//
// For a chain of length 2^count this is exactly the set of positions at
// which Generate captures a pebble. Generate builds the table once up front
// so the loop can test checkpoint membership without recomputing a power
// each iteration.
func Powers(count uint64) []uint64 {
	powers := make([]uint64, 0, count)
	for p := uint64(1); p <= count; p++ {
		powers = append(powers, uint64(1)<<p)
	}
	return powers
}
