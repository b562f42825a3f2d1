package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, d *debouncer) string {
	t.Helper()
	select {
	case path := <-d.C:
		return path
	case <-time.After(2 * time.Second):
		t.Fatal("no path delivered")
		return ""
	}
}

func TestDebouncer_Coalesces(t *testing.T) {
	d := newDebouncer(150 * time.Millisecond)
	defer d.stop()

	for i := 0; i < 5; i++ {
		d.trigger("a.docx")
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, "a.docx", receive(t, d))

	select {
	case path := <-d.C:
		t.Fatalf("unexpected second delivery of %s", path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDebouncer_PerPath(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	defer d.stop()

	d.trigger("a.docx")
	d.trigger("b.docx")
	got := map[string]bool{receive(t, d): true, receive(t, d): true}
	assert.Equal(t, map[string]bool{"a.docx": true, "b.docx": true}, got)
}

func TestDebouncer_Stop(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	d.trigger("a.docx")
	d.stop()

	select {
	case path := <-d.C:
		t.Fatalf("stopped debouncer delivered %s", path)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestWatchTargets(t *testing.T) {
	dir := t.TempDir()
	targets, err := watchTargets([]string{filepath.Join(dir, "sub", "..", "a.docx"), filepath.Join(dir, "a.docx")})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{filepath.Join(dir, "a.docx"): true}, targets)
}

func TestWatch_FactoryError(t *testing.T) {
	f := setup(t)
	f.factory.err = assert.AnError

	_, err := run("watch", "clean.docx")
	assert.ErrorIs(t, err, assert.AnError)
}
