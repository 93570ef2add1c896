package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/philipparndt/gomodel/pkg/model"
	"github.com/philipparndt/gomodel/pkg/obj"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type reload struct {
	path string
	m    *model.Model
	err  error
}

func newWatcher(t *testing.T) *ModelWatcher {
	t.Helper()
	w, err := New(50*time.Millisecond, obj.NewImporter(), nil)
	require.NoError(t, err)
	return w
}

func waitReload(t *testing.T, ch <-chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
		return reload{}
	}
}

func TestWatchReloadsChangedModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.obj")
	require.NoError(t, os.WriteFile(path, []byte("g part\n"), 0o644))

	w := newWatcher(t)
	ch := make(chan reload, 4)
	require.NoError(t, w.Watch([]string{path}, func(p string, m *model.Model, err error) {
		ch <- reload{p, m, err}
	}))
	w.Start()

	src := "g part\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	r := waitReload(t, ch)
	require.NoError(t, r.err)
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, r.path)
	assert.Equal(t, 1, r.m.FaceCount())

	require.NoError(t, w.Close())
}

func TestWatchReportsBrokenModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.obj")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w := newWatcher(t)
	ch := make(chan reload, 4)
	require.NoError(t, w.Watch([]string{path}, func(p string, m *model.Model, err error) {
		ch <- reload{p, m, err}
	}))
	w.Start()

	require.NoError(t, os.WriteFile(path, []byte("f 1 2 3\n"), 0o644))
	r := waitReload(t, ch)
	assert.ErrorIs(t, r.err, obj.ErrMalformed)
	assert.Nil(t, r.m)

	require.NoError(t, w.Close())
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.obj")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w := newWatcher(t)
	ch := make(chan reload, 4)
	require.NoError(t, w.Watch([]string{path}, func(p string, m *model.Model, err error) {
		ch <- reload{p, m, err}
	}))
	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.obj"), []byte("g x\n"), 0o644))
	select {
	case r := <-ch:
		t.Fatalf("unexpected reload of %s", r.path)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, w.Close())
}

func TestWatchRejectsUnsupportedFiles(t *testing.T) {
	w := newWatcher(t)
	err := w.Watch([]string{"model.stl"}, func(string, *model.Model, error) {})
	assert.ErrorIs(t, err, obj.ErrFileNotSupported)
	require.NoError(t, w.Close())
}

func TestRemoveAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.obj")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w := newWatcher(t)
	require.NoError(t, w.Watch([]string{path, path}, func(string, *model.Model, error) {}))
	assert.Equal(t, 1, w.dirs[dir])

	require.NoError(t, w.RemoveAll())
	assert.Empty(t, w.handlers)
	assert.Empty(t, w.dirs)
	require.NoError(t, w.Close())
}
