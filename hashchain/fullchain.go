package hashchain

import "hash"

// GenerateFull creates the hash chain without pebbling, materialising every
// chain value from H1 through Hlength.
//
// It is the reference for cross checking Generate: the pebble captured at
// position p always has the value of element p-1 of the returned chain, for
// the same seed and digest. Unlike Generate there is no power of two
// restriction on length.
//
// Warning: the resulting slice holds length digest outputs. Memory cost is
// O(length) and intentionally unbounded; large lengths will exhaust
// available memory.
//
// ** the hasher is reset **
func GenerateFull(hasher hash.Hash, length uint64, seed uint64) [][]byte {

	chain := make([][]byte, 0, length)

	hasher.Reset()
	hashWriteSeed(hasher, seed)
	output := hasher.Sum(nil)
	hasher.Reset()
	chain = append(chain, output)

	for i := uint64(2); i <= length; i++ {
		hasher.Write(output)
		output = hasher.Sum(nil)
		hasher.Reset()
		chain = append(chain, output)
	}

	return chain
}
