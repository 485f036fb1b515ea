package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Allow_TableTest(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		maxRequests int
		window      time.Duration
		// setup drives the tracker into a starting state before the call
		// under test.
		setup func(tr *Tracker)
		ip    string
		at    time.Time

		wantErr      error
		wantCount    int
		wantWindowAt time.Time
		wantNoRecord bool
	}{
		{
			name:         "first request from unseen ip starts a window",
			maxRequests:  3,
			window:       time.Minute,
			ip:           "10.0.0.1",
			at:           base,
			wantCount:    1,
			wantWindowAt: base,
		},
		{
			name:        "second request increments without moving the window",
			maxRequests: 3,
			window:      time.Minute,
			setup: func(tr *Tracker) {
				require.NoError(t, tr.Allow("10.0.0.1", base))
			},
			ip:           "10.0.0.1",
			at:           base.Add(5 * time.Second),
			wantCount:    2,
			wantWindowAt: base,
		},
		{
			name:        "request at the ceiling is rejected",
			maxRequests: 3,
			window:      time.Minute,
			setup: func(tr *Tracker) {
				for i := 0; i < 3; i++ {
					require.NoError(t, tr.Allow("10.0.0.1", base))
				}
			},
			ip:           "10.0.0.1",
			at:           base.Add(10 * time.Second),
			wantErr:      ErrLimitExceeded,
			wantCount:    3,
			wantWindowAt: base,
		},
		{
			name:        "rejection does not mutate the record",
			maxRequests: 1,
			window:      time.Minute,
			setup: func(tr *Tracker) {
				require.NoError(t, tr.Allow("10.0.0.1", base))
				require.ErrorIs(t, tr.Allow("10.0.0.1", base.Add(time.Second)), ErrLimitExceeded)
			},
			ip:           "10.0.0.1",
			at:           base.Add(2 * time.Second),
			wantErr:      ErrLimitExceeded,
			wantCount:    1,
			wantWindowAt: base,
		},
		{
			name:        "window rollover resets the counter to one",
			maxRequests: 3,
			window:      time.Minute,
			setup: func(tr *Tracker) {
				for i := 0; i < 3; i++ {
					require.NoError(t, tr.Allow("10.0.0.1", base))
				}
			},
			ip:           "10.0.0.1",
			at:           base.Add(61 * time.Second),
			wantCount:    1,
			wantWindowAt: base.Add(61 * time.Second),
		},
		{
			name:        "request exactly at the window boundary still counts",
			maxRequests: 1,
			window:      time.Minute,
			setup: func(tr *Tracker) {
				require.NoError(t, tr.Allow("10.0.0.1", base))
			},
			// elapsed == window is not strictly greater, so the old window
			// still applies and the ceiling rejects.
			ip:           "10.0.0.1",
			at:           base.Add(time.Minute),
			wantErr:      ErrLimitExceeded,
			wantCount:    1,
			wantWindowAt: base,
		},
		{
			name:        "distinct ips do not interfere",
			maxRequests: 1,
			window:      time.Minute,
			setup: func(tr *Tracker) {
				require.NoError(t, tr.Allow("10.0.0.1", base))
				require.ErrorIs(t, tr.Allow("10.0.0.1", base), ErrLimitExceeded)
			},
			ip:           "10.0.0.2",
			at:           base,
			wantCount:    1,
			wantWindowAt: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.maxRequests, tt.window)
			if tt.setup != nil {
				tt.setup(tr)
			}

			err := tr.Allow(tt.ip, tt.at)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			rec, ok := tr.Record(tt.ip)
			if tt.wantNoRecord {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantCount, rec.Count)
			assert.Equal(t, tt.wantWindowAt, rec.WindowStart)
		})
	}
}

func TestTracker_Allow_FullWindowScenario(t *testing.T) {
	// 500 requests from one IP within 5 seconds: all admitted, counter ends
	// at the ceiling. The 501st, 10 seconds later, is rejected. 61 seconds
	// after the first request the window has rolled over and the counter
	// resets to 1.
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(500, time.Minute)

	for i := 0; i < 500; i++ {
		at := base.Add(time.Duration(i) * 10 * time.Millisecond)
		require.NoError(t, tr.Allow("10.0.0.1", at), "request %d", i+1)
	}

	rec, ok := tr.Record("10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, 500, rec.Count)
	assert.Equal(t, base, rec.WindowStart)

	assert.ErrorIs(t, tr.Allow("10.0.0.1", base.Add(10*time.Second)), ErrLimitExceeded)

	require.NoError(t, tr.Allow("10.0.0.1", base.Add(61*time.Second)))
	rec, _ = tr.Record("10.0.0.1")
	assert.Equal(t, 1, rec.Count)
	assert.Equal(t, base.Add(61*time.Second), rec.WindowStart)
}

func TestTracker_Allow_NoDoubleAdmission(t *testing.T) {
	// With the counter one below the ceiling, K concurrent requests must
	// admit exactly one and reject the rest.
	const concurrent = 64

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(10, time.Minute)

	for i := 0; i < 9; i++ {
		require.NoError(t, tr.Allow("10.0.0.1", base))
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	okCount, rejected := 0, 0

	start := make(chan struct{})
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			err := tr.Allow("10.0.0.1", base.Add(time.Second))

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				okCount++
			} else {
				rejected++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, okCount)
	assert.Equal(t, concurrent-1, rejected)

	rec, _ := tr.Record("10.0.0.1")
	assert.Equal(t, 10, rec.Count)
}

func TestTracker_Allow_ConcurrentDistinctIPs(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(100, time.Minute)

	ips := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}

	var wg sync.WaitGroup
	for _, ip := range ips {
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(ip string) {
				defer wg.Done()
				assert.NoError(t, tr.Allow(ip, base))
			}(ip)
		}
	}
	wg.Wait()

	for _, ip := range ips {
		rec, ok := tr.Record(ip)
		require.True(t, ok, ip)
		assert.Equal(t, 50, rec.Count, ip)
	}
	assert.Equal(t, len(ips), tr.Len())
}

func TestTracker_RetryAfter(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(1, time.Minute)

	assert.Zero(t, tr.RetryAfter("10.0.0.1", base), "unknown ip")

	require.NoError(t, tr.Allow("10.0.0.1", base))
	assert.Equal(t, 40*time.Second, tr.RetryAfter("10.0.0.1", base.Add(20*time.Second)))
	assert.Zero(t, tr.RetryAfter("10.0.0.1", base.Add(2*time.Minute)), "expired window")
}

func TestTracker_Sweep(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(10, time.Minute)

	require.NoError(t, tr.Allow("stale", base))
	require.NoError(t, tr.Allow("fresh", base.Add(10*time.Minute)))

	// Eviction cutoff is window + idleTTL behind now: "stale" is long past
	// it, "fresh" is inside its window.
	evicted := tr.Sweep(base.Add(10*time.Minute+30*time.Second), 5*time.Minute)

	assert.Equal(t, 1, evicted)
	_, ok := tr.Record("stale")
	assert.False(t, ok)
	_, ok = tr.Record("fresh")
	assert.True(t, ok)
	assert.Equal(t, 1, tr.Len())
}

func TestNewTracker_Defaults(t *testing.T) {
	tr := NewTracker(0, 0)

	assert.Equal(t, DefaultMaxRequests, tr.MaxRequests())
	assert.Equal(t, DefaultWindow, tr.Window())
}
