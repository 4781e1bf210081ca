package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := payload{Name: "alpha", Count: 3}
	require.NoError(t, fs.Save("things", in))

	var out payload
	require.NoError(t, fs.Load("things", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out payload
	assert.ErrorIs(t, fs.Load("absent", &out), ErrNotFound)
}

func TestFileStoreCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	var out payload
	err = fs.Load("broken", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("things", payload{Name: "first"}))
	require.NoError(t, fs.Save("things", payload{Name: "second"}))

	var out payload
	require.NoError(t, fs.Load("things", &out))
	assert.Equal(t, "second", out.Name)
}

func TestMemStoreRoundTrip(t *testing.T) {
	ms := NewMemStore()

	var out payload
	assert.ErrorIs(t, ms.Load("absent", &out), ErrNotFound)

	require.NoError(t, ms.Save("things", payload{Name: "alpha", Count: 1}))
	require.NoError(t, ms.Load("things", &out))
	assert.Equal(t, "alpha", out.Name)
}
