package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers for canonical key encoding. Lookups by
// raw properties or by untyped representation encode their key into one of
// these buffers before hashing it.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 64))
	},
}
