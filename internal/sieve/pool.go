package sieve

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// BufferPool recycles segment flag buffers across sieve tasks so the steady
// state allocates nothing per segment. All buffers are sized for the widest
// segment the pool was created for.
type BufferPool struct {
	bits uint
	pool sync.Pool
}

// NewBufferPool creates a pool of flag buffers for segments up to the given
// width.
func NewBufferPool(width uint64) *BufferPool {
	bits := SegmentBufferBits(width)
	return &BufferPool{
		bits: bits,
		pool: sync.Pool{
			New: func() any {
				return bitset.New(bits)
			},
		},
	}
}

// Get returns a cleared buffer ready for sieving.
func (p *BufferPool) Get() *bitset.BitSet {
	buf := p.pool.Get().(*bitset.BitSet)
	buf.ClearAll()
	return buf
}

// Put returns a buffer to the pool for reuse.
func (p *BufferPool) Put(buf *bitset.BitSet) {
	p.pool.Put(buf)
}
