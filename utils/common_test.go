package common

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMaybeGzipPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0o644))

	r, err := OpenMaybeGzip(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(data))
}

func TestOpenMaybeGzipCompressed(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte("compressed content"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	path := filepath.Join(t.TempDir(), "data.txt.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	r, err := OpenMaybeGzip(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "compressed content", string(data))
}

func TestOpenMaybeGzipShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r, err := OpenMaybeGzip(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestOpenMaybeGzipMissing(t *testing.T) {
	_, err := OpenMaybeGzip(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
