package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles login attempts per client key.
type Limiter struct {
	mu      sync.Mutex
	every   time.Duration
	burst   int
	clients map[string]*client
	now     func() time.Time
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewLimiter allows burst attempts, refilled one per every.
func NewLimiter(every time.Duration, burst int) *Limiter {
	return &Limiter{
		every:   every,
		burst:   burst,
		clients: map[string]*client{},
		now:     time.Now,
	}
}

// Allow reports whether key may attempt a login now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	l.sweep(now)
	return c.lim.AllowN(now, 1)
}

// sweep drops clients idle long enough to have refilled completely.
func (l *Limiter) sweep(now time.Time) {
	idle := l.every * time.Duration(l.burst+1)
	for k, c := range l.clients {
		if now.Sub(c.lastSeen) > idle {
			delete(l.clients, k)
		}
	}
}
