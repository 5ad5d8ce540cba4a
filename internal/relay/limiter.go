package relay

import (
	"sync"
	"time"

	"github.com/postfolio/meet/internal/domain"
)

// JoinLimiter throttles join attempts per client over a sliding window.
type JoinLimiter struct {
	mu       sync.Mutex
	history  map[domain.ClientID][]time.Time
	limit    int
	interval time.Duration
}

func NewJoinLimiter(limit int, interval time.Duration) *JoinLimiter {
	return &JoinLimiter{
		history:  make(map[domain.ClientID][]time.Time),
		limit:    limit,
		interval: interval,
	}
}

func (rl *JoinLimiter) Allow(id domain.ClientID) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.interval)

	attempts := rl.history[id]

	fresh := make([]time.Time, 0, len(attempts))
	for _, t := range attempts {
		if t.After(windowStart) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= rl.limit {
		rl.history[id] = fresh
		return false
	}

	fresh = append(fresh, now)
	rl.history[id] = fresh
	return true
}

// Forget drops a client's history once its connection goes away.
func (rl *JoinLimiter) Forget(id domain.ClientID) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.history, id)
}
