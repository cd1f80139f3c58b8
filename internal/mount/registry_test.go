package mount

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haryokuncoro/portfolio-website/internal/components/header"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestRegistry(t *testing.T, ttl time.Duration) *Registry {
	t.Helper()
	return newLimitedRegistry(t, ttl, 1000)
}

func newLimitedRegistry(t *testing.T, ttl time.Duration, limit int) *Registry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := NewRegistry([]byte(testSecret), ttl, limit, logger)
	require.NoError(t, err)
	return r
}

func TestNewRegistry_ShortSecret(t *testing.T) {
	_, err := NewRegistry([]byte("too short"), time.Minute, 10, nil)
	assert.Error(t, err)
}

func TestNewRegistry_NonPositiveLimit(t *testing.T) {
	_, err := NewRegistry([]byte(testSecret), time.Minute, 0, nil)
	assert.Error(t, err)
}

func TestMount_BoundedByLimit(t *testing.T) {
	r := newLimitedRegistry(t, time.Hour, 100)

	for i := 0; i < 5000; i++ {
		_, _, err := r.Mount()
		require.NoError(t, err)
	}

	assert.Equal(t, 100, r.Len())
}

func TestMount_EvictsLongestIdle(t *testing.T) {
	r := newLimitedRegistry(t, time.Hour, 2)

	idle, _, err := r.Mount()
	require.NoError(t, err)
	active, _, err := r.Mount()
	require.NoError(t, err)

	// Touching the first header makes the second one the longest idle.
	_, err = r.Toggle(idle)
	require.NoError(t, err)

	_, _, err = r.Mount()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	_, err = r.Toggle(active)
	assert.ErrorIs(t, err, ErrNotMounted)
	h, err := r.Toggle(idle)
	require.NoError(t, err)
	assert.False(t, h.IsOpen())
}

func TestMount(t *testing.T) {
	r := newTestRegistry(t, time.Minute)

	token, h, err := r.Mount(header.WithLogo("Site"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Site", h.Logo())
	assert.False(t, h.IsOpen())
	assert.Equal(t, 1, r.Len())

	other, _, err := r.Mount()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
	assert.Equal(t, 2, r.Len())
}

func TestToggleAndClose(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	token, _, err := r.Mount()
	require.NoError(t, err)

	h, err := r.Toggle(token)
	require.NoError(t, err)
	assert.True(t, h.IsOpen())

	h, err = r.Toggle(token)
	require.NoError(t, err)
	assert.False(t, h.IsOpen())

	_, err = r.Toggle(token)
	require.NoError(t, err)
	h, err = r.Close(token)
	require.NoError(t, err)
	assert.False(t, h.IsOpen())
}

func TestSnapshotsAreDetached(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	token, mounted, err := r.Mount()
	require.NoError(t, err)

	mounted.Toggle()

	h, err := r.Toggle(token)
	require.NoError(t, err)
	assert.True(t, h.IsOpen(), "mutating a snapshot must not change the mounted state")
}

func TestActivateLink(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	token, _, err := r.Mount()
	require.NoError(t, err)

	_, err = r.Toggle(token)
	require.NoError(t, err)

	h, found, err := r.ActivateLink(token, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, h.IsOpen())

	_, err = r.Toggle(token)
	require.NoError(t, err)
	h, found, err = r.ActivateLink(token, 42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, h.IsOpen())
}

func TestInstancesAreIsolated(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	a, _, err := r.Mount()
	require.NoError(t, err)
	b, _, err := r.Mount()
	require.NoError(t, err)

	_, err = r.Toggle(a)
	require.NoError(t, err)

	h, err := r.Close(b)
	require.NoError(t, err)
	assert.False(t, h.IsOpen())

	h, err = r.Toggle(a)
	require.NoError(t, err)
	assert.False(t, h.IsOpen())
}

func TestInvalidToken(t *testing.T) {
	r := newTestRegistry(t, time.Minute)

	_, err := r.Toggle("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, _, err := r.Mount()
	require.NoError(t, err)
	_, err = r.Toggle(strings.ToUpper(token))
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := NewRegistry([]byte(strings.Repeat("x", 64)), time.Minute, 10, nil)
	require.NoError(t, err)
	foreignToken, _, err := foreign.Mount()
	require.NoError(t, err)
	_, err = r.Toggle(foreignToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUnmount(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	token, _, err := r.Mount()
	require.NoError(t, err)

	require.NoError(t, r.Unmount(token))
	assert.Equal(t, 0, r.Len())

	_, err = r.Toggle(token)
	assert.ErrorIs(t, err, ErrNotMounted)
	assert.ErrorIs(t, r.Unmount(token), ErrNotMounted)
}

func TestSweep(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	current := start
	r.now = func() time.Time { return current }

	stale, _, err := r.Mount()
	require.NoError(t, err)

	current = start.Add(50 * time.Second)
	fresh, _, err := r.Mount()
	require.NoError(t, err)

	assert.Equal(t, 1, r.Sweep(start.Add(90*time.Second)))
	assert.Equal(t, 1, r.Len())

	_, err = r.Toggle(stale)
	assert.ErrorIs(t, err, ErrNotMounted)
	_, err = r.Toggle(fresh)
	assert.NoError(t, err)
}

func TestSweep_TouchExtendsLifetime(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	current := start
	r.now = func() time.Time { return current }

	token, _, err := r.Mount()
	require.NoError(t, err)

	current = start.Add(45 * time.Second)
	_, err = r.Toggle(token)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Sweep(start.Add(90*time.Second)))
}

func TestSweep_ZeroTTL(t *testing.T) {
	r := newTestRegistry(t, 0)
	_, _, err := r.Mount()
	require.NoError(t, err)

	assert.Equal(t, 0, r.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, r.Len())
}

func TestRun_StopsOnCancel(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestConcurrentToggles(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	token, _, err := r.Mount()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Toggle(token)
		}()
	}
	wg.Wait()

	h, err := r.Close(token)
	require.NoError(t, err)
	assert.False(t, h.IsOpen())
}
