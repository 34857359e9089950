package signal

import (
	"sync"
	"time"

	"github.com/dkeye/Chat/internal/domain"
)

// RoomRateLimiter is a sliding window limiter keyed by connection.
type RoomRateLimiter struct {
	mu       sync.Mutex
	history  map[domain.ConnID][]time.Time
	limit    int
	interval time.Duration
	now      func() time.Time
}

func NewRoomRateLimiter(limit int, interval time.Duration) *RoomRateLimiter {
	return &RoomRateLimiter{
		history:  make(map[domain.ConnID][]time.Time),
		limit:    limit,
		interval: interval,
		now:      time.Now,
	}
}

func (rl *RoomRateLimiter) Allow(cid domain.ConnID) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	windowStart := now.Add(-rl.interval)

	attempts := rl.history[cid]
	fresh := attempts[:0]
	for _, t := range attempts {
		if t.After(windowStart) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= rl.limit {
		rl.history[cid] = fresh
		return false
	}
	rl.history[cid] = append(fresh, now)
	return true
}

// Forget drops the connection's window.
func (rl *RoomRateLimiter) Forget(cid domain.ConnID) {
	rl.mu.Lock()
	delete(rl.history, cid)
	rl.mu.Unlock()
}
