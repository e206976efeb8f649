package hashchain

import (
	"encoding/binary"
	"hash"
)

// hashWriteSeed writes a uint64 seed to a hasher in littleendian layout -
// least significant byte at lowest address/storage location. Note that this
// is the opposite byte order to the bigendian convention typical for merkle
// position commitments; chain values are defined over the littleendian seed
// encoding and interoperating generators must agree on it.
func hashWriteSeed(hasher hash.Hash, seed uint64) {
	b := [8]byte{}
	binary.LittleEndian.PutUint64(b[:], seed)
	hasher.Write(b[:])
}
