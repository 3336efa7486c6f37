package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockClock_StartsAtGenesis(t *testing.T) {
	c := NewBlockClock(100)
	assert.Equal(t, uint64(100), c.Height())
}

func TestBlockClock_Advance(t *testing.T) {
	c := NewBlockClock(0)
	assert.Equal(t, uint64(1), c.Advance())
	assert.Equal(t, uint64(2), c.Advance())
	assert.Equal(t, uint64(2), c.Height())
}

func TestBlockClock_AdvanceToNeverGoesBack(t *testing.T) {
	c := NewBlockClock(50)
	c.AdvanceTo(10)
	assert.Equal(t, uint64(50), c.Height())
	c.AdvanceTo(75)
	assert.Equal(t, uint64(75), c.Height())
}

func TestBlockClock_ConcurrentAdvance(t *testing.T) {
	c := NewBlockClock(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(100), c.Height())
}
