package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_SixtyTicksToReady(t *testing.T) {
	cd := NewCountdown(60)
	assert.False(t, cd.Ready())
	assert.Equal(t, 60, cd.Remaining())

	for i := 0; i < 59; i++ {
		cd.Tick()
	}
	assert.False(t, cd.Ready())
	assert.Equal(t, 1, cd.Remaining())

	cd.Tick()
	assert.True(t, cd.Ready())
	assert.Equal(t, 0, cd.Remaining())
}

func TestCountdown_TickAtZeroStaysZero(t *testing.T) {
	cd := NewCountdown(1)
	cd.Tick()
	cd.Tick()
	assert.Equal(t, 0, cd.Remaining())
}

func TestCountdown_Rearm(t *testing.T) {
	cd := NewCountdown(60)
	for i := 0; i < 60; i++ {
		cd.Tick()
	}
	assert.True(t, cd.Ready())

	cd.Arm()
	assert.False(t, cd.Ready())
	assert.Equal(t, 60, cd.Remaining())
}
