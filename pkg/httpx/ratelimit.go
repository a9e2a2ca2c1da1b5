package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/cofound/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Rate limit profiles. Each can be overridden with
// RATELIMIT_{NAME}_REQUESTS, RATELIMIT_{NAME}_WINDOW_SEC and RATELIMIT_{NAME}_BURST.
var (
	// StrictLimit for anonymous public writes (waitlist, reviews, contact).
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit for authenticated and admin writes.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 30, Window: time.Minute, Burst: 30}

	// LenientLimit for authenticated reads.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 120, Window: time.Minute, Burst: 120}

	// PublicLimit for public read-only endpoints such as stats and health.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv overlays RATELIMIT_{prefix}_* variables onto def.
// Unparseable or non-positive values are ignored.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	return n, err == nil && n > 0
}

// KeyExtractor picks the bucket a request counts against.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor uses the client IP, honouring X-Forwarded-For and X-Real-IP
// for requests that arrive through a proxy.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor uses the authenticated subject, or "" if there is none.
func UserIDKeyExtractor(r *http.Request) string {
	return UserIDFromContext(r.Context())
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// idleBucketTTL is how long an untouched bucket lives before it is evicted.
const idleBucketTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterPool keeps one token bucket per key and evicts idle buckets so
// ephemeral keys (rotating IPs) do not grow the map without bound.
type limiterPool struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newLimiterPool(cfg RateLimitConfig) *limiterPool {
	return &limiterPool{
		buckets:   make(map[string]*bucket),
		limit:     rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
	}
}

func (p *limiterPool) get(key string, now time.Time) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if now.Sub(p.lastSweep) > idleBucketTTL {
		for k, b := range p.buckets {
			if now.Sub(b.lastSeen) > idleBucketTTL {
				delete(p.buckets, k)
			}
		}
		p.lastSweep = now
	}

	b, ok := p.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(p.limit, p.burst)}
		p.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// RateLimitMiddleware rejects requests over the configured rate with 429.
func RateLimitMiddleware(cfg RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	pool := newLimiterPool(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			limiter := pool.get(key, now)

			reservation := limiter.ReserveN(now, 1)
			if delay := reservation.DelayFrom(now); delay > 0 {
				reservation.CancelAt(now)

				retryAfter := max(int(delay.Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", cfg.Window.String())

				log.Warn("rate limit exceeded", "key", key, "endpoint", r.URL.Path, "retry_after", retryAfter)
				WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits by client IP.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user and IP; unauthenticated
// requests fall back to IP alone.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}
