package counter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNodeCounterIncAndAdd(t *testing.T) {
	var c NodeCounter
	c.Inc()
	c.Inc()
	c.Add(8)
	assert.Equal(t, uint64(10), c.Value())
	c.Reset()
	assert.Equal(t, uint64(0), c.Value())
}

func TestTimerThresholds(t *testing.T) {
	tm := NewTimer(10*time.Millisecond, 50*time.Millisecond)
	assert.False(t, tm.AboveRecommended())
	assert.False(t, tm.AbovePanic())
	time.Sleep(15 * time.Millisecond)
	assert.True(t, tm.AboveRecommended())
	assert.False(t, tm.AbovePanic())
	assert.True(t, tm.Remaining() > 0)
}

func TestTimerNps(t *testing.T) {
	tm := NewTimer(time.Second, 2*time.Second)
	time.Sleep(10 * time.Millisecond)
	nps := tm.Nps(1000)
	assert.True(t, nps > 0)
}
