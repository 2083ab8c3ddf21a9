package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/eventure/server/internal/config"
	"golang.org/x/time/rate"
)

// LoginRateLimit throttles credential endpoints per remote address. A zero
// per-minute limit disables the middleware entirely.
func LoginRateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.LoginPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	store := newLimiterStore(cfg.LoginPerMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.limiter(clientKey(r)).Allow() {
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type limiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	perMinute int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(perMinute int) *limiterStore {
	store := &limiterStore{
		limiters:  make(map[string]*limiterEntry),
		perMinute: perMinute,
	}

	// Evict stale entries so hostile traffic cannot grow the map unbounded.
	go store.cleanupLoop()

	return store
}

func (s *limiterStore) limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.limiters[key]; ok {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	interval := time.Minute / time.Duration(s.perMinute)
	limiter := rate.NewLimiter(rate.Every(interval), s.perMinute)
	s.limiters[key] = &limiterEntry{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (s *limiterStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *limiterStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-15 * time.Minute)
	for key, entry := range s.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(s.limiters, key)
		}
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
