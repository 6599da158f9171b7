package infrastructure

import (
	"context"
	"sync"
	"time"
)

// AttemptLimiter decides whether another attempt identified by key is
// allowed in the current window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimiter is an in-process sliding window limiter.
type RateLimiter struct {
	requests map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.Mutex
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go rl.cleanupStaleEntries(time.Hour)
	return rl
}

func (rl *RateLimiter) Allow(_ context.Context, key string) (bool, error) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	validRequests := rl.pruned(rl.requests[key], now.Add(-rl.window))

	if len(validRequests) < rl.limit {
		rl.requests[key] = append(validRequests, now)
		return true, nil
	}

	rl.requests[key] = validRequests
	return false, nil
}

// Close stops the cleanup goroutine.
func (rl *RateLimiter) Close() error {
	rl.stopOnce.Do(func() { close(rl.stop) })
	return nil
}

func (rl *RateLimiter) pruned(requests []time.Time, windowStart time.Time) []time.Time {
	var valid []time.Time
	for _, reqTime := range requests {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}
	return valid
}

func (rl *RateLimiter) cleanupStaleEntries(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mutex.Lock()
			cutoff := rl.now().Add(-rl.window)
			for key, requests := range rl.requests {
				if valid := rl.pruned(requests, cutoff); len(valid) == 0 {
					delete(rl.requests, key)
				} else {
					rl.requests[key] = valid
				}
			}
			rl.mutex.Unlock()
		}
	}
}
