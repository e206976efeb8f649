package hashchain

import "errors"

var ErrNotPowerOfTwo = errors.New("length not a power of two")
