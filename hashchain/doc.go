package hashchain

/*

# Hash chain pebbling, setup phase

A one-way hash chain is the sequence

	H1 = H(seed), Hi = H(Hi-1) for i = 2..L

Chains like this underpin one-time-password schemes, broadcast stream
authentication and micropayment protocols. Those protocols consume the chain
back to front, which makes naive use O(L) in either storage or recomputation.
The pebbling technique fixes that: while the chain is first generated, a
small set of checkpoint values ('pebbles') is captured at the power of two
positions. Later traversal can then regenerate any chain value from the
nearest pebble rather than replaying from the seed, for O(log L) storage.

This package implements the setup phase only:

  - Generate walks the chain once, holding only the rolling digest output,
    and captures a Pebble at each power of two position. Memory is O(log L).
  - GenerateFull is the reference builder. It materialises every chain value
    and exists to cross check Generate. Memory is O(L).
  - The navigation primitives (IsPow2, Powers, Log2Uint64, PebblePositions)
    are exported individually in the same spirit as merkle position
    arithmetic: small composable functions with a burden of knowledge on the
    caller for the hot paths.

The digest is injected as a stdlib hash.Hash. Any one-way fixed output size
function satisfies the contract: streaming Write, Sum(nil) to finalize, and
Reset for reuse. The chain loop is inherently serial, each output feeds the
next, so there is nothing to parallelise without restructuring the digest
usage. A single hash.Hash instance must not be shared across concurrent
calls; Reset is a mutating operation.

Pebbles carry traversal metadata (StartIncr, DestIncr, Destination) that
nothing in this package consumes. A traversal algorithm which advances
pebbles along the chain to regenerate intermediate values is the natural
extension, and the metadata is reserved for it. It is deliberately not
implemented here.

*/
