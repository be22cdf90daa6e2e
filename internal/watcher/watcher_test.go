package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory_raw.csv")
	require.NoError(t, os.WriteFile(path, []byte("ip\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changed := make(chan struct{}, 8)
	w := New(path, func(context.Context) {
		calls.Add(1)
		changed <- struct{}{}
	}).WithDebounce(50 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	// a burst of writes collapses into one call
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("ip\n10.0.0.1\n"), 0644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange not called")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory_raw.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	w := New(path, func(context.Context) { calls.Add(1) }).WithDebounce(20 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory_clean.csv"), []byte("x"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())

	cancel()
	<-done
}

func TestWatchMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "absent", "raw.csv"), func(context.Context) {})
	err := w.Watch(context.Background())
	assert.Error(t, err)
}
