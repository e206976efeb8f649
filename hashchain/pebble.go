package hashchain

import (
	"encoding/hex"
	"fmt"
)

// A Pebble is a checkpoint captured at one power of two position along the
// hash chain.
type Pebble struct {

	// StartIncr and DestIncr are precomputed advance multiples of the
	// capture position (3x and 2x respectively). They are reserved for a
	// traversal algorithm which consumes the pebbles to regenerate
	// intermediate chain values; nothing in this package reads them.
	StartIncr uint64
	DestIncr  uint64

	// Position is the 1 based chain index the checkpoint was captured at,
	// always a power of two and never exceeding the chain length.
	Position uint64

	// Destination is the position a traversal step will advance this pebble
	// toward. The generator always sets it equal to Position.
	Destination uint64

	// Value is the chain value produced at Position. Its length is the
	// digest output size.
	Value []byte
}

func (p Pebble) String() string {
	return fmt.Sprintf(
		"Pebble{start_incr: %d, dest_incr: %d, position: %d, destination: %d, value: %s}",
		p.StartIncr, p.DestIncr, p.Position, p.Destination, hex.EncodeToString(p.Value))
}
