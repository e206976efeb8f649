package hashchain

import "hash"

// Generate creates the initial hash chain and returns the pebbles which can
// later be used to traverse it.
//
// The chain is H1 = H(seed), Hi = H(Hi-1) for i = 2..length, with the seed
// committed via hashWriteSeed. The chain itself is never materialised: only
// the rolling digest output is held, and a Pebble is captured whenever the
// index lands on a power of two. For a valid length exactly
// Log2Uint64(length) pebbles are returned, in ascending position order. A
// chain of length 1 has no capturable position and yields zero pebbles.
//
// length must be a power of two. Zero and every other non power of two are
// rejected with ErrNotPowerOfTwo before any hashing work begins.
//
// ** the hasher is reset **
func Generate(hasher hash.Hash, length uint64, seed uint64) ([]Pebble, error) {

	// Zero is invalid in its own right, not merely as a consequence of the
	// bitwise test below, so it gets an explicit branch.
	if length == 0 {
		return nil, ErrNotPowerOfTwo
	}
	if length&(length-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	numPebbles := Log2Uint64(length)

	pebbles := make([]Pebble, 0, numPebbles)

	// build the power table once so the loop tests checkpoint membership
	// without recomputing a power each iteration
	powers := Powers(numPebbles)

	hasher.Reset()
	hashWriteSeed(hasher, seed)
	output := hasher.Sum(nil)
	hasher.Reset()

	for i := uint64(2); i <= length; i++ {

		hasher.Write(output)
		output = hasher.Sum(nil)
		hasher.Reset()

		// i is a checkpoint exactly when it equals the table entry for its
		// own bit length. Sum allocates a fresh slice each round, so the
		// captured value does not alias the rolling output.
		if i == powers[Log2Uint64(i)-1] {
			pebbles = append(pebbles, Pebble{
				StartIncr:   3 * i,
				DestIncr:    2 * i,
				Position:    i,
				Destination: i,
				Value:       output,
			})
		}
	}

	return pebbles, nil
}
