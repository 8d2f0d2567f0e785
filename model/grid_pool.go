package model

import (
	"sync"

	"github.com/sheikhrachel/game-of-colors/rules"
)

// GridPool recycles next-generation buffers for memory efficiency.
// A nil *GridPool is valid and simply allocates.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]rules.Color)
			},
		},
	}
}

// Get retrieves a buffer of exactly size cells. Its contents are unspecified.
func (p *GridPool) Get(size int) []rules.Color {
	if p == nil {
		return make([]rules.Color, size)
	}
	buf := p.pool.Get().(*[]rules.Color)
	if cap(*buf) < size {
		return make([]rules.Color, size)
	}
	return (*buf)[:size]
}

// Put returns a buffer to the pool
func (p *GridPool) Put(buf []rules.Color) {
	if p == nil || buf == nil {
		return
	}
	p.pool.Put(&buf)
}
