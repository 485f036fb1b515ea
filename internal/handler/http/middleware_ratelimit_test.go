package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/ratelimit"
	"github.com/MKhiriev/ledger-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedHandler(maxRequests int, window time.Duration) *Handler {
	return &Handler{
		tracker: ratelimit.NewTracker(maxRequests, window),
		logger:  logger.Nop(),
	}
}

func executeRateLimited(h *Handler, remoteAddr string) (*httptest.ResponseRecorder, bool) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withRateLimit(next)
	req := httptest.NewRequest(http.MethodGet, "/subjects", nil)
	req.RemoteAddr = remoteAddr

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr, nextCalled
}

// ---- Admission ----

func TestWithRateLimit_AdmitsUnderTheCeiling(t *testing.T) {
	h := newRateLimitedHandler(3, time.Minute)

	for i := 0; i < 3; i++ {
		rr, nextCalled := executeRateLimited(h, "10.0.0.1:55001")
		assert.True(t, nextCalled, "request %d should be admitted", i+1)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestWithRateLimit_RejectsOverTheCeiling(t *testing.T) {
	h := newRateLimitedHandler(2, time.Minute)

	executeRateLimited(h, "10.0.0.1:55001")
	executeRateLimited(h, "10.0.0.1:55002")

	rr, nextCalled := executeRateLimited(h, "10.0.0.1:55003")

	assert.False(t, nextCalled, "request over the ceiling must not reach the next handler")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	retryAfter := rr.Header().Get("Retry-After")
	require.NotEmpty(t, retryAfter, "429 must carry a Retry-After header")

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusTooManyRequests, body.Code)
	assert.NotEmpty(t, body.Error)
}

func TestWithRateLimit_RejectionDoesNotExtendTheWindow(t *testing.T) {
	h := newRateLimitedHandler(1, time.Minute)

	executeRateLimited(h, "10.0.0.1:55001")

	// Rejected requests must leave the record untouched.
	for i := 0; i < 5; i++ {
		rr, _ := executeRateLimited(h, "10.0.0.1:55001")
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	}

	rec, ok := h.tracker.Record("10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, 1, rec.Count)
}

func TestWithRateLimit_DistinctClientsAreIndependent(t *testing.T) {
	h := newRateLimitedHandler(1, time.Minute)

	executeRateLimited(h, "10.0.0.1:55001")

	rr, nextCalled := executeRateLimited(h, "10.0.0.2:55001")
	assert.True(t, nextCalled, "a different client must not be throttled")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, _ = executeRateLimited(h, "10.0.0.1:55099")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code, "port changes must not reset the client's budget")
}

// ---- Client resolution ----

func TestWithRateLimit_UnresolvableClient(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
	}{
		{name: "empty remote address", remoteAddr: ""},
		{name: "blank remote address", remoteAddr: "   "},
		{name: "garbage remote address", remoteAddr: "not-an-address:foo:bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newRateLimitedHandler(5, time.Minute)

			rr, nextCalled := executeRateLimited(h, tt.remoteAddr)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Zero(t, h.tracker.Len(), "no record may be created for an unattributable request")
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		wantIP     string
		wantErr    bool
	}{
		{name: "host and port", remoteAddr: "192.0.2.1:1234", wantIP: "192.0.2.1"},
		{name: "bare IPv4", remoteAddr: "192.0.2.1", wantIP: "192.0.2.1"},
		{name: "IPv6 with port", remoteAddr: "[2001:db8::1]:443", wantIP: "2001:db8::1"},
		{name: "surrounding whitespace", remoteAddr: " 192.0.2.1:1234 ", wantIP: "192.0.2.1"},
		{name: "empty", remoteAddr: "", wantErr: true},
		{name: "not an address", remoteAddr: "localhost-without-port-or-ip::", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr

			ip, err := clientIP(req)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnresolvableClient)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIP, ip)
		})
	}
}

// ---- Degraded configurations ----

func TestWithRateLimit_MissingTracker(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr, nextCalled := executeRateLimited(h, "10.0.0.1:55001")

	assert.False(t, nextCalled, "requests must not bypass the limiter when it is missing")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- Retry-After ----

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 0, retryAfterSeconds(0))
	assert.Equal(t, 0, retryAfterSeconds(-time.Second))
	assert.Equal(t, 1, retryAfterSeconds(10*time.Millisecond), "sub-second waits round up")
	assert.Equal(t, 60, retryAfterSeconds(time.Minute))
	assert.Equal(t, 60, retryAfterSeconds(59*time.Second+10*time.Millisecond))
}
