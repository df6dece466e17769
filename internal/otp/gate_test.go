package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock управляемое время для тестов
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestGate() (*Gate, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewGate(60, 15, clock), clock
}

func TestGate_CooldownBlocksRepeatRequest(t *testing.T) {
	gate, _ := newTestGate()

	retry, ok := gate.TryRequest("+79991234567")
	require.True(t, ok)
	assert.Equal(t, 0, retry)

	retry, ok = gate.TryRequest("+79991234567")
	assert.False(t, ok)
	assert.Equal(t, 60, retry)
}

func TestGate_TickReleasesCooldown(t *testing.T) {
	gate, _ := newTestGate()

	_, ok := gate.TryRequest("+79991234567")
	require.True(t, ok)

	for i := 0; i < 60; i++ {
		gate.Tick()
	}

	_, ok = gate.TryRequest("+79991234567")
	assert.True(t, ok)
}

func TestGate_DisarmAllowsImmediateRetry(t *testing.T) {
	gate, _ := newTestGate()

	_, ok := gate.TryRequest("+79991234567")
	require.True(t, ok)

	gate.Disarm("+79991234567")

	retry, ok := gate.TryRequest("+79991234567")
	assert.True(t, ok)
	assert.Equal(t, 0, retry)
}

func TestGate_DisarmUnknownPhoneNoop(t *testing.T) {
	gate, _ := newTestGate()

	gate.Disarm("+79991234567")

	_, ok := gate.TryRequest("+79991234567")
	assert.True(t, ok)
}

func TestGate_CooldownsIndependentPerPhone(t *testing.T) {
	gate, _ := newTestGate()

	_, ok := gate.TryRequest("+79991234567")
	require.True(t, ok)

	_, ok = gate.TryRequest("+79997654321")
	assert.True(t, ok)
}

func TestGate_VerifiedExpires(t *testing.T) {
	gate, clock := newTestGate()

	gate.MarkVerified("+79991234567")
	assert.True(t, gate.IsVerified("+79991234567"))

	clock.Advance(14 * time.Minute)
	assert.True(t, gate.IsVerified("+79991234567"))

	clock.Advance(2 * time.Minute)
	assert.False(t, gate.IsVerified("+79991234567"))
}

func TestGate_UnknownPhoneNotVerified(t *testing.T) {
	gate, _ := newTestGate()
	assert.False(t, gate.IsVerified("+79990000000"))
	assert.Equal(t, 0, gate.RetryAfter("+79990000000"))
}
