package filex

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc map[string][]string

func newDoc(t *testing.T) (*Document[doc], string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "doc.json")
	return NewDocument(p, func() doc { return doc{} }), p
}

func TestDocument_MissingFileCreatedWithDefault(t *testing.T) {
	d, p := newDoc(t)

	v, err := d.Load()
	require.NoError(t, err)
	assert.Empty(t, v)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestDocument_StoreThenLoad(t *testing.T) {
	d, _ := newDoc(t)

	require.NoError(t, d.Store(doc{"alice": {"a", "b"}}))

	v, err := d.Load()
	require.NoError(t, err)
	assert.Equal(t, doc{"alice": {"a", "b"}}, v)
}

func TestDocument_CorruptFileResetToDefault(t *testing.T) {
	d, p := newDoc(t)
	require.NoError(t, os.WriteFile(p, []byte("{ not json"), 0o600))

	var resetPath string
	d.OnReset = func(path string, cause error) { resetPath = path }

	v, err := d.Load()
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, p, resetPath)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.True(t, json.Valid(data), "file must hold valid JSON after reset: %q", data)
	assert.JSONEq(t, `{}`, string(data))
}

func TestDocument_WrongShapeIsCorrupt(t *testing.T) {
	d, p := newDoc(t)
	require.NoError(t, os.WriteFile(p, []byte(`[1, 2, 3]`), 0o600))

	v, err := d.Load()
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDocument_EmptyFileIsDefault(t *testing.T) {
	d, p := newDoc(t)
	require.NoError(t, os.WriteFile(p, []byte("  \n"), 0o600))

	v, err := d.Load()
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDocument_RemoveIdempotent(t *testing.T) {
	d, p := newDoc(t)
	require.NoError(t, d.Store(doc{}))

	require.NoError(t, d.Remove())
	require.NoError(t, d.Remove())

	_, err := os.Stat(p)
	assert.True(t, os.IsNotExist(err))
}

func TestDocument_ReadErrorSurfaced(t *testing.T) {
	// a directory in place of the file cannot be read as a document
	dir := t.TempDir()
	d := NewDocument(dir, func() doc { return doc{} })

	_, err := d.Load()
	require.Error(t, err)
}
