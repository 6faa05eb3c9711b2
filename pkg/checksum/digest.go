package checksum

import (
	"encoding/binary"
	"hash"
)

var _ hash.Hash64 = (*digest)(nil)

type digest struct {
	strategy Strategy
	acc      [Lanes]uint64
	pending  [ChunkSize]byte
	npending int
	value    uint64
}

// New returns a streaming hash.Hash64 for the given strategy.
// After any sequence of writes, Sum64 matches Sum64With for the concatenation of everything written.
// Auto is resolved when New is called.
func New(s Strategy) hash.Hash64 {
	return &digest{strategy: s.resolve()}
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	if d.strategy != Vector {
		d.value = sumScalar(d.value, p)
		return n, nil
	}
	if d.npending > 0 {
		c := copy(d.pending[d.npending:], p)
		d.npending += c
		p = p[c:]
		if d.npending < ChunkSize {
			return n, nil
		}
		accumulate(&d.acc, d.pending[:])
		d.npending = 0
	}
	used := accumulate(&d.acc, p)
	d.npending = copy(d.pending[:], p[used:])
	return n, nil
}

// Sum64 doesn't change the state of the digest, so more data may be written afterward.
func (d *digest) Sum64() uint64 {
	if d.strategy != Vector {
		return d.value
	}
	acc := d.acc
	return sumScalar(fold(&acc), d.pending[:d.npending])
}

// Sum appends the big-endian checksum to b.
func (d *digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

func (d *digest) Reset() {
	s := d.strategy
	*d = digest{strategy: s}
}

func (d *digest) Size() int {
	return 8
}

func (d *digest) BlockSize() int {
	return ChunkSize
}
