package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOpponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
}

func TestColorIsValid(t *testing.T) {
	assert.True(t, Black.IsValid())
	assert.True(t, White.IsValid())
	assert.False(t, Empty.IsValid())
}

func TestMoveIsPass(t *testing.T) {
	assert.True(t, MovePass.IsPass())
	assert.False(t, MoveNone.IsPass())
}

func TestValueDiscDiffRoundTrip(t *testing.T) {
	v := DiscDiffToValue(18)
	assert.Equal(t, 18, v.DiscDiff())
	assert.Equal(t, Value(18*128), v)
}

func TestValueWinMagnitude(t *testing.T) {
	assert.True(t, ValueMax.IsWinMagnitude())
	assert.True(t, ValueMin.IsWinMagnitude())
	assert.False(t, Value(100).IsWinMagnitude())
}

func TestHashPairXORCancellation(t *testing.T) {
	p := HashPair{H1: 0xdeadbeef, H2: 0x12345678}
	flip := HashPair{H1: 0xaaaaaaaa, H2: 0x55555555}
	orig := p
	p.XOR(flip)
	p.XOR(flip)
	assert.Equal(t, orig, p)
}
