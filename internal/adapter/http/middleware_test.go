package httpadapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sponsorhub/internal/config/configs"
	"sponsorhub/internal/core/domain"
)

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"bearer":    {"Bearer abc", "abc", true},
		"lowercase": {"bearer abc", "abc", true},
		"padded":    {"Bearer   abc ", "abc", true},
		"empty":     {"", "", false},
		"basic":     {"Basic abc", "", false},
		"no token":  {"Bearer ", "", false},
		"no scheme": {"abc", "", false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			token, ok := bearerToken(r)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "198.51.100.7:5555"
	assert.Equal(t, "ip:198.51.100.7", clientKey(r))

	// an authenticated principal does not change the bucket
	r = r.WithContext(context.WithValue(r.Context(), principalKey, domain.Principal{UserID: uuid.New()}))
	assert.Equal(t, "ip:198.51.100.7", clientKey(r))

	r.RemoteAddr = "unix"
	assert.Equal(t, "ip:unix", clientKey(r))
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := newRateLimiter(configs.RateLimit{RequestsPerSecond: 1, Burst: 2})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("a"))
	assert.True(t, rl.allow("a"))
	assert.False(t, rl.allow("a"))
	assert.True(t, rl.allow("b"))

	now = now.Add(time.Second)
	assert.True(t, rl.allow("a"))
}

func TestRateLimiterEvictsIdle(t *testing.T) {
	rl := newRateLimiter(configs.RateLimit{RequestsPerSecond: 1, Burst: 1})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("old")
	now = now.Add(2 * time.Minute)
	rl.allow("fresh")
	rl.evict(now)

	assert.NotContains(t, rl.limiters, "old")
	assert.Contains(t, rl.limiters, "fresh")
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := newRateLimiter(configs.RateLimit{RequestsPerSecond: 0})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	h := rl.middleware(next)
	for range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}
}

func TestRateLimiterFullKeepsActiveBuckets(t *testing.T) {
	rl := newRateLimiter(configs.RateLimit{RequestsPerSecond: 1, Burst: 1})
	rl.capacity = 3
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		assert.True(t, rl.allow(key))
		now = now.Add(time.Millisecond)
	}
	assert.False(t, rl.allow("b"))

	// a new client pushes out only the least recently seen one
	assert.True(t, rl.allow("d"))
	assert.Len(t, rl.limiters, 3)
	assert.NotContains(t, rl.limiters, "a")
	assert.False(t, rl.allow("b"))
	assert.False(t, rl.allow("c"))
}
