package digest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/byte4ever/md5b64/digest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSidecar_and_ReadSidecar_roundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))

	require.NoError(t, digest.SaveSidecar(pa))

	got, err := digest.ReadSidecar(pa)
	require.NoError(t, err)

	dg, err := digest.SumFile(pa)
	require.NoError(t, err)

	assert.Equal(t, dg.Base64(), got)
}

func TestReadSidecar_missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))

	got, err := digest.ReadSidecar(pa)

	assert.Empty(t, got)
	assert.NoError(t, err)
}

func TestVerifySidecar_valid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))
	require.NoError(t, digest.SaveSidecar(pa))

	ok, err := digest.VerifySidecar(pa)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifySidecar_tampered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))
	require.NoError(t, digest.SaveSidecar(pa))

	require.NoError(t, os.WriteFile(pa, []byte("tampered"), 0o600))

	ok, err := digest.VerifySidecar(pa)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifySidecar_missing_sidecar(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))

	ok, err := digest.VerifySidecar(pa)

	require.NoError(t, err)
	assert.False(t, ok)
}
