package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Checksum digests every body's position and velocity in insertion order.
// Two engines fed identical configs, scenes and elapsed sequences must
// produce identical checksums tick for tick; a divergence pinpoints lost
// determinism without diffing full state dumps.
func (e *Engine) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte

	write := func(s float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(s))
		_, _ = h.Write(buf[:])
	}

	for _, b := range e.bodies {
		pos := b.Position()
		vel := b.Velocity()
		write(pos.X.Float())
		write(pos.Y.Float())
		write(vel.X.Float())
		write(vel.Y.Float())
	}
	return h.Sum64()
}
