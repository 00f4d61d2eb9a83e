package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(perMin, burst int) *Config {
	return &Config{
		Enabled:        true,
		RequestsPerMin: perMin,
		Burst:          burst,
	}
}

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig(60, 5))
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("client-a")
		require.True(t, allowed, "request %d within burst", i)
		assert.Equal(t, 60, info.Limit)
	}
}

func TestLimiterBlocksOverBurst(t *testing.T) {
	l := NewLimiter(testConfig(60, 3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-a")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLimiter(testConfig(60, 1))
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed, "another client has its own bucket")
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("client-a")
		require.True(t, allowed)
	}
}

func TestLimiterRefills(t *testing.T) {
	// 600 per minute refills 10 tokens per second.
	l := NewLimiter(testConfig(600, 1))
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)
	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed, "bucket refills over time")
}
