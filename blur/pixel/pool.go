package pixel

import "sync"

// Scratch wraps a byte slice with reuse-friendly semantics. Blur kernels use
// it for per-call working memory; Pool keeps instances alive across calls.
type Scratch struct {
	data []byte
}

// Bytes returns the underlying slice.
func (s *Scratch) Bytes() []byte {
	return s.data
}

// Len returns the current number of bytes.
func (s *Scratch) Len() int {
	return len(s.data)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Contents are unspecified after a resize; call Zero if a cleared buffer
// is required.
func (s *Scratch) Resize(n int) {
	if n < 0 {
		n = 0
	}

	if n <= cap(s.data) {
		s.data = s.data[:n]
		return
	}

	s.data = make([]byte, n)
}

// Zero sets all bytes to 0.
func (s *Scratch) Zero() {
	for i := range s.data {
		s.data[i] = 0
	}
}

// Pool provides sync.Pool-based Scratch reuse to reduce GC pressure when
// blurring many buffers in a loop.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Scratch{}
			},
		},
	}
}

// Get returns a Scratch with the requested length. Contents are
// unspecified. Callers must return it via Put when done.
func (p *Pool) Get(length int) *Scratch {
	s := p.pool.Get().(*Scratch)
	s.Resize(length)

	return s
}

// Put returns a Scratch to the pool for reuse.
// The caller must not use the scratch after calling Put.
func (p *Pool) Put(s *Scratch) {
	if s == nil {
		return
	}

	p.pool.Put(s)
}
