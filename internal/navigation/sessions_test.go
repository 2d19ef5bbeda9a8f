package navigation

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayasaad.dev/internal/models"
)

func TestSessionsCreateGet(t *testing.T) {
	store := NewSessions()
	a := store.Create()
	b := store.Create()

	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, store.Len())

	got, ok := store.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	a.Switcher.Navigate(models.PageAbout)
	assert.Equal(t, models.PageHome, b.Switcher.Current())
	assert.Equal(t, "About Me | Aya Saad", a.Viewport.Title)

	_, ok = store.Get("unknown")
	assert.False(t, ok)
}

func TestSessionsSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessions()
	store.now = func() time.Time { return now }

	stale := store.Create()
	now = now.Add(20 * time.Minute)
	fresh := store.Create()
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, store.Sweep(30*time.Minute))
	_, ok := store.Get(stale.ID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}

func TestSessionsRunStopsOnCancel(t *testing.T) {
	store := NewSessions()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond, time.Hour, slog.Default())
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
