package search

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// NewSeededRNG returns a deterministic random source. Two sources built from
// the same seed produce the same sequence.
func NewSeededRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return frand.NewCustom(key[:], 1024, 12)
}
