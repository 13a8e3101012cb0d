package restapi

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"metro.transit.dev/internal/models"
)

const (
	noKeyBucket     = "__no_key__"
	limiterIdleTTL  = 10 * time.Minute
	cleanupInterval = 5 * time.Minute
)

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware limits gateway requests per API key. Requests without a
// key or with an unknown key share one bucket, so unknown keys cannot grow the
// limiter table.
type RateLimitMiddleware struct {
	mu        sync.Mutex
	limiters  map[string]*keyLimiter
	rateLimit rate.Limit
	burstSize int
	disabled  bool

	// isValidKey reports whether a key gets its own bucket. Nil accepts
	// every key.
	isValidKey func(string) bool

	cleanupTick *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
}

// NewRateLimitMiddleware allows ratePerSecond requests per interval for each
// API key accepted by isValidKey, with bursts of the same size. A rate of zero
// or less disables limiting.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration, isValidKey func(string) bool) *RateLimitMiddleware {
	if ratePerSecond <= 0 {
		return &RateLimitMiddleware{disabled: true}
	}

	rl := &RateLimitMiddleware{
		limiters:    make(map[string]*keyLimiter),
		rateLimit:   rate.Every(interval / time.Duration(ratePerSecond)),
		burstSize:   ratePerSecond,
		isValidKey:  isValidKey,
		cleanupTick: time.NewTicker(cleanupInterval),
		done:        make(chan struct{}),
	}
	go rl.cleanup()

	return rl
}

func (rl *RateLimitMiddleware) getLimiter(apiKey string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[apiKey]
	if !exists {
		entry = &keyLimiter{limiter: rate.NewLimiter(rl.rateLimit, rl.burstSize)}
		rl.limiters[apiKey] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// Handler wraps next with the rate limit.
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	if rl.disabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(rl.bucketFor(r.URL.Query().Get("key")), time.Now()).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimitMiddleware) bucketFor(apiKey string) string {
	if apiKey == "" || (rl.isValidKey != nil && !rl.isValidKey(apiKey)) {
		return noKeyBucket
	}
	return apiKey
}

func (rl *RateLimitMiddleware) retryAfterSeconds() int {
	seconds := int(math.Ceil(1 / float64(rl.rateLimit)))
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	response := models.NewResponse(http.StatusTooManyRequests, nil, "Rate limit exceeded. Please try again later.")
	_ = json.NewEncoder(w).Encode(response)
}

func (rl *RateLimitMiddleware) cleanup() {
	for {
		select {
		case now := <-rl.cleanupTick.C:
			rl.removeIdle(now)
		case <-rl.done:
			return
		}
	}
}

// removeIdle drops limiters not used within limiterIdleTTL of now. A dropped
// key starts again with a full bucket.
func (rl *RateLimitMiddleware) removeIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimitMiddleware) Stop() {
	if rl.disabled {
		return
	}
	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
}
