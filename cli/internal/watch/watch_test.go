package watch_test

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

	"github.com/tplib/comfort/cli/internal/watch"
)

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.schema")
	require.NoError(t, os.WriteFile(file, []byte("table a { x TEXT }"), 0o644))

	var calls, errs atomic.Int32
	w, err := watch.New(file,
		func() error {
			if calls.Add(1) == 2 {
				return errors.New("bad schema")
			}
			return nil
		},
		watch.WithDebounce(20*time.Millisecond),
		watch.WithErrorHandler(func(error) { errs.Add(1) }),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// Unrelated files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(file, []byte("table a { x TEXT; y TEXT }"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return errs.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.EqualValues(t, 2, calls.Load())
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "missing", "x.schema"), func() error { return nil })
	assert.Error(t, err)
}
