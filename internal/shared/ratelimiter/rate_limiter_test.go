package ratelimiter

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock returns a controllable now function.
func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return cur
		}, func(d time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			cur = cur.Add(d)
		}
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Minute)
	now, advance := fakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rl.now = now

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "call %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "fourth call in the window is rejected")
	assert.True(t, rl.Allow("10.0.0.2"), "keys are independent")

	advance(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"), "a new window resets the count")
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("k"))
	}
}

func TestRateLimiter_SweepsExpiredWindows(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Second)
	now, advance := fakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rl.now = now

	for i := 0; i < 1024; i++ {
		rl.Allow(fmt.Sprintf("client-%d", i))
	}
	advance(2 * time.Second)
	rl.Allow("fresh")

	assert.Len(t, rl.windows, 1)
}

func TestRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(50, time.Hour)
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("same") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
