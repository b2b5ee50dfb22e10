package vcrypto

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// BitSource supplies the key bits consumed by GenerateSecret. Implementations
// need not be safe for concurrent use; GenerateSecret draws sequentially.
type BitSource interface {
	Bit() bool
}

type pcgSource struct {
	rng *rand.Rand
}

func (s *pcgSource) Bit() bool {
	return s.rng.Uint64()&1 != 0
}

// NewSeededSource returns a deterministic BitSource backed by a PCG generator.
// Two sources with the same seed yield the same bit sequence.
func NewSeededSource(seed uint64) BitSource {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// NewSource returns a BitSource seeded from the operating system's entropy
// pool. The security of the scheme rests on the per-block pixel construction,
// not on the generator's unpredictability, but fresh seeds keep independently
// generated shares independent.
func NewSource() BitSource {
	var buf [16]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back anyway.
		return NewSeededSource(0x9e3779b97f4a7c15)
	}
	s1 := binary.LittleEndian.Uint64(buf[:8])
	s2 := binary.LittleEndian.Uint64(buf[8:])
	return &pcgSource{rng: rand.New(rand.NewPCG(s1, s2))}
}
