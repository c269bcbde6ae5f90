package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-tracker-backend/internal/metrics"
)

type windowEntry struct {
	mu       sync.Mutex
	requests []time.Time
	// evicted is set once the entry has been removed from the store.
	evicted bool
}

func (e *windowEntry) prune(cutoff time.Time) {
	filtered := e.requests[:0]
	for _, t := range e.requests {
		if t.After(cutoff) {
			filtered = append(filtered, t)
		}
	}
	e.requests = filtered
}

// RateLimiter allows at most max requests per client within a sliding window.
// Clients are keyed by the peer address; X-Forwarded-For is only consulted
// when the peer is one of the trusted proxies.
type RateLimiter struct {
	max     int
	window  time.Duration
	trusted []netip.Prefix
	store   sync.Map
	metrics *metrics.Manager
	now     func() time.Time

	sweepMu   sync.Mutex
	lastSweep time.Time
}

func NewRateLimiter(max int, window time.Duration, trustedProxies []netip.Prefix, metricsManager *metrics.Manager) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		trusted: trustedProxies,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (rl *RateLimiter) allow(client string) bool {
	now := rl.now()
	rl.sweep(now)
	cutoff := now.Add(-rl.window)

	for {
		v, _ := rl.store.LoadOrStore(client, &windowEntry{})
		entry := v.(*windowEntry)

		entry.mu.Lock()
		if entry.evicted {
			entry.mu.Unlock()
			continue
		}
		entry.prune(cutoff)
		allowed := len(entry.requests) < rl.max
		if allowed {
			entry.requests = append(entry.requests, now)
		}
		entry.mu.Unlock()
		return allowed
	}
}

// sweep drops clients whose window is empty. It runs at most once per window.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.sweepMu.Lock()
	if now.Sub(rl.lastSweep) < rl.window {
		rl.sweepMu.Unlock()
		return
	}
	rl.lastSweep = now
	rl.sweepMu.Unlock()

	cutoff := now.Add(-rl.window)
	rl.store.Range(func(key, v any) bool {
		entry := v.(*windowEntry)
		entry.mu.Lock()
		entry.prune(cutoff)
		if len(entry.requests) == 0 {
			entry.evicted = true
			rl.store.CompareAndDelete(key, v)
		}
		entry.mu.Unlock()
		return true
	})
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := rl.clientIP(r)
		if !rl.allow(client) {
			if rl.metrics != nil {
				rl.metrics.CounterRateLimitedRequests.Inc()
			}
			log.WithField("client", client).Warnf("rate limited %s %s", r.Method, r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the peer address, or, behind a trusted proxy, the nearest
// X-Forwarded-For hop that is not itself a trusted proxy.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !rl.isTrusted(host) {
		return host
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !rl.isTrusted(hop) {
			return hop
		}
		host = hop
	}
	return host
}

func (rl *RateLimiter) isTrusted(ip string) bool {
	if len(rl.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range rl.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
