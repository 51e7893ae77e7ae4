package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLimiter_Allow(t *testing.T) {
	l := New(1, 2)
	defer l.Stop()

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	// Keys are independent.
	assert.True(t, l.Allow("b"))
	assert.Equal(t, 2, l.Len())
}

func TestKeyedLimiter_EvictIdle(t *testing.T) {
	l := New(1, 1)
	defer l.Stop()

	now := time.Now()
	l.now = func() time.Time { return now }

	l.Allow("old")
	now = now.Add(defaultIdleTTL + time.Second)
	l.Allow("fresh")

	l.evictIdle()

	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Allow("old"), "evicted key starts with a full bucket")
}

func TestKeyedLimiter_Stop(t *testing.T) {
	l := New(1, 1)

	assert.NotPanics(t, func() {
		l.Stop()
		l.Stop()
	})
}

func TestKeyedLimiter_Middleware(t *testing.T) {
	l := New(1, 1)
	defer l.Stop()

	h := l.Middleware(
		func(r *http.Request) string { return r.RemoteAddr },
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTooManyRequests) },
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		h.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Code)
	}
}
