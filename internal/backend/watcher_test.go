package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/sbbrowse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		require.True(t, ok, "events closed early")
		return evt
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherReportsPackageLogAndBlacklistChanges(t *testing.T) {
	f := testutil.NewFixture(t)
	logDir := f.PackageLogDir
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	blacklist := f.BlacklistFile

	w, err := NewWatcher(logDir, blacklist, 20*time.Millisecond)
	require.NoError(t, err)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	f.Install("lame", "3.100")
	evt := nextEvent(t, w)
	require.NoError(t, evt.Err)
	assert.Equal(t, KindPackages, evt.Kind)

	// drain any trailing notifications from the first write
	time.Sleep(100 * time.Millisecond)
	for len(w.Events()) > 0 {
		<-w.Events()
	}

	f.Blacklist("vlc")
	evt = nextEvent(t, w)
	require.NoError(t, evt.Err)
	assert.Equal(t, KindBlacklist, evt.Kind)
	assert.Equal(t, blacklist, evt.Path)
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(filepath.Join(root, "log"), filepath.Join(root, "blacklist"), 10*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "other"), nil, 0o644))
	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event %+v", evt)
	case <-time.After(150 * time.Millisecond):
	}

	w.Stop()
	w.Wait()
	_, ok := <-w.Events()
	assert.False(t, ok, "events closed after stop")
}
