package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindowCounter caps requests over a rolling window using two fixed
// windows and a weighted average:
//
//	effective = current + previous × (time left in current window / window)
//
// A nil counter is disabled and allows everything.
type SlidingWindowCounter struct {
	mu          sync.Mutex
	curr        int
	prev        int
	start       time.Time
	window      time.Duration
	maxRequests int
}

// NewSlidingWindowCounter returns nil when maxRequests <= 0.
func NewSlidingWindowCounter(maxRequests int, window time.Duration) *SlidingWindowCounter {
	if maxRequests <= 0 {
		return nil
	}
	return &SlidingWindowCounter{
		start:       time.Now(),
		window:      window,
		maxRequests: maxRequests,
	}
}

// Allow counts the request if it fits in the window.
func (c *SlidingWindowCounter) Allow() bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.effective() >= float64(c.maxRequests) {
		return false
	}
	c.curr++
	return true
}

// Check reports whether a request would fit without counting it.
func (c *SlidingWindowCounter) Check() bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.effective() < float64(c.maxRequests)
}

// Consume counts a request that Check already admitted.
func (c *SlidingWindowCounter) Consume() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.effective() < float64(c.maxRequests) {
		c.curr++
	}
}

// Effective returns the current weighted count.
func (c *SlidingWindowCounter) Effective() float64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.effective()
}

// Remaining returns the approximate quota left, or -1 when disabled.
func (c *SlidingWindowCounter) Remaining() int {
	if c == nil {
		return -1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return max(0, int(float64(c.maxRequests)-c.effective()))
}

// effective rotates expired windows and returns the weighted count.
// Must be called with mu held.
func (c *SlidingWindowCounter) effective() float64 {
	if elapsed := time.Since(c.start); elapsed >= c.window {
		passed := int(elapsed / c.window)
		if passed == 1 {
			c.prev = c.curr
		} else {
			c.prev = 0
		}
		c.curr = 0
		c.start = c.start.Add(time.Duration(passed) * c.window)
	}

	overlap := float64(c.window-time.Since(c.start)) / float64(c.window)
	overlap = min(1, max(0, overlap))
	return float64(c.curr) + float64(c.prev)*overlap
}
