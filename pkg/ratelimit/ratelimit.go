package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keyed holds one token bucket per key, e.g. per email address.
type Keyed struct {
	mu       sync.Mutex
	limiters map[string]*entry
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// PerMinute allows n events per minute per key with a burst of n.
func PerMinute(n int) *Keyed {
	if n < 1 {
		n = 1
	}
	return New(rate.Every(time.Minute/time.Duration(n)), n)
}

func New(r rate.Limit, burst int) *Keyed {
	return &Keyed{
		limiters: make(map[string]*entry),
		rate:     r,
		burst:    burst,
		now:      time.Now,
	}
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	e, ok := k.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.rate, k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Cleanup drops limiters not used within idle and returns how many were removed.
func (k *Keyed) Cleanup(idle time.Duration) int {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := k.now().Add(-idle)
	removed := 0
	for key, e := range k.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(k.limiters, key)
			removed++
		}
	}
	return removed
}

func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}
