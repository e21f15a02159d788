package datawatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsArtifactChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte("employee_id,name\n"), 0o600))

	changed := make(chan string, 8)
	w, err := New(dir, WithOnChange(func(name string) {
		changed <- name
	}))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("employee_id,name\nEMP1001,Priya\n"), 0o600))

	select {
	case name := <-changed:
		assert.Equal(t, "employees.csv", name)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported for employees.csv")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan string, 8)
	w, err := New(dir, WithOnChange(func(name string) {
		changed <- name
	}))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o600))

	select {
	case name := <-changed:
		t.Fatalf("unexpected change reported: %s", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
