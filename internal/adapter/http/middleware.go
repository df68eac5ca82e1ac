package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"sponsorhub/internal/config/configs"
	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/metrics"
)

type ctxKey int

const (
	principalKey ctxKey = iota
	authErrKey
)

func principalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// actor returns the authenticated user id. Only valid behind requireAuth.
func actor(r *http.Request) uuid.UUID {
	p, _ := principalFrom(r.Context())
	return p.UserID
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// authenticate attaches the principal of a valid bearer token. Requests
// without a token pass through anonymously; a verification failure is kept
// for requireAuth so public routes still answer.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		ctx := r.Context()
		p, err := h.svc.Verifier.Verify(ctx, token)
		if err != nil {
			h.logger.Debug("token rejected", slog.Any("error", err))
			ctx = context.WithValue(ctx, authErrKey, err)
		} else {
			ctx = context.WithValue(ctx, principalKey, p)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth rejects requests without a verified principal.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFrom(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		if err, ok := r.Context().Value(authErrKey).(error); ok && !errors.Is(err, domain.ErrUnauthorized) {
			h.writeError(w, r, err)
			return
		}
		writeErrorMessage(w, http.StatusUnauthorized, "authentication required")
	})
}

// logRequests logs one line per request once the response is written.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// cors answers preflight requests and sets CORS headers for allowed
// origins. An empty allow list disables CORS headers.
func cors(allowedOrigins []string) func(http.Handler) http.Handler {
	allow := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allow[strings.TrimSpace(origin)] = struct{}{}
	}
	_, wildcard := allow["*"]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := allow[origin]; ok || wildcard {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
					w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Max-Age", "600")
				}
			}
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// maxLimiters bounds the per-client limiter map. When full, idle entries
// are dropped first, then the least recently seen client.
const maxLimiters = 10000

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter applies a token bucket per client address, independent of
// any bearer token.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
	capacity int
	now      func() time.Time
}

func newRateLimiter(cfg configs.RateLimit) *rateLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(cfg.RequestsPerSecond),
		burst:    burst,
		capacity: maxLimiters,
		now:      time.Now,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= rl.capacity {
			rl.evict(now)
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// evict drops clients idle for over a minute. If none are idle the least
// recently seen client is dropped; other buckets are kept.
func (rl *rateLimiter) evict(now time.Time) {
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) > time.Minute {
			delete(rl.limiters, k)
			continue
		}
		if oldestKey == "" || cl.lastSeen.Before(oldest) {
			oldestKey, oldest = k, cl.lastSeen
		}
	}
	if len(rl.limiters) >= rl.capacity && oldestKey != "" {
		delete(rl.limiters, oldestKey)
	}
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	if rl.rate <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientKey(r)) {
			metrics.RateLimited()
			w.Header().Set("Retry-After", "1")
			writeErrorMessage(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey is the connection address, or the forwarded one when RealIP
// is installed.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
