package services

import "go.uber.org/atomic"

// BlockClockInterface supplies the timestamp weather records are stored under.
// Heights only move forward.
type BlockClockInterface interface {
	Height() uint64
	Advance() uint64
	AdvanceTo(height uint64)
}

type BlockClock struct {
	height *atomic.Uint64
}

func (c *BlockClock) Height() uint64 {
	return c.height.Load()
}

func (c *BlockClock) Advance() uint64 {
	return c.height.Inc()
}

// AdvanceTo moves the clock to height unless it is already past it.
func (c *BlockClock) AdvanceTo(height uint64) {
	for {
		cur := c.height.Load()
		if height <= cur || c.height.CAS(cur, height) {
			return
		}
	}
}

func NewBlockClock(genesis uint64) *BlockClock {
	return &BlockClock{height: atomic.NewUint64(genesis)}
}
