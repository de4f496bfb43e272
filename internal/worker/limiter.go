package worker

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long an unused client limiter is kept
const DefaultIdleTTL = 10 * time.Minute

// Limiter implements per-client rate limiting. Limiters for clients that
// stay idle longer than the idle TTL are evicted.
type Limiter struct {
	clients      *gocache.Cache
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	return NewLimiterWithIdleTTL(requestsPerSecond, burst, DefaultIdleTTL)
}

// NewLimiterWithIdleTTL creates a rate limiter that forgets clients after idle
func NewLimiterWithIdleTTL(requestsPerSecond float64, burst int, idle time.Duration) *Limiter {
	if burst <= 0 {
		burst = 5
	}
	if idle <= 0 {
		idle = DefaultIdleTTL
	}

	return &Limiter{
		clients:      gocache.New(idle, idle),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until key may proceed or ctx is done
func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.getLimiter(key).Wait(ctx)
}

// Allow reports whether key may proceed now without waiting
func (l *Limiter) Allow(key string) bool {
	return l.getLimiter(key).Allow()
}

// Clients returns the number of tracked clients
func (l *Limiter) Clients() int {
	return l.clients.ItemCount()
}

// getLimiter returns the limiter for key and refreshes its idle deadline
func (l *Limiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.clients.Get(key); ok {
		limiter := v.(*rate.Limiter)
		l.clients.SetDefault(key, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.clients.SetDefault(key, limiter)
	return limiter
}
