package api

import (
	"sync"
	"time"
)

// sweepInterval is how often Allow drops buckets that have refilled.
const sweepInterval = time.Minute

// RateLimiter implements a token bucket rate limiter per client.
// Every client gets the same limit; buckets are created on first use and
// dropped once they are full again.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*tokenBucket
	rpm       int
	now       func() time.Time
	lastSweep time.Time
}

type tokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing rpm requests per minute per
// client. rpm <= 0 disables limiting.
func NewRateLimiter(rpm int) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		rpm:     rpm,
		now:     time.Now,
	}
}

func (r *RateLimiter) newBucket() *tokenBucket {
	// Allow a burst of ~10 seconds worth, minimum 5 requests
	maxTokens := float64(r.rpm) / 6
	if maxTokens < 5 {
		maxTokens = 5
	}
	return &tokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: float64(r.rpm) / 60.0,
		lastRefill: r.now(),
	}
}

// Allow checks if a request is allowed for the client
// Returns true if allowed, false if rate limited
func (r *RateLimiter) Allow(client string) bool {
	if r.rpm <= 0 {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= sweepInterval {
		r.sweep(now)
	}

	bucket, exists := r.buckets[client]
	if !exists {
		bucket = r.newBucket()
		r.buckets[client] = bucket
	}
	bucket.refill(now)

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}
	return false
}

func (b *tokenBucket) refill(now time.Time) {
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now
}

// sweep drops buckets that would be full by now.
func (r *RateLimiter) sweep(now time.Time) {
	for client, b := range r.buckets {
		if b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate >= b.maxTokens {
			delete(r.buckets, client)
		}
	}
	r.lastSweep = now
}

// Remaining returns the whole tokens left for a client, or -1 when
// limiting is disabled.
func (r *RateLimiter) Remaining(client string) int {
	if r.rpm <= 0 {
		return -1
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, exists := r.buckets[client]
	if !exists {
		return int(r.newBucket().maxTokens)
	}
	return int(bucket.tokens)
}
