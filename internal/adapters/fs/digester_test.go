package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.vvm.dev/vvm/internal/adapters/fs"
)

func TestContentDigest(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "token.vy")
	require.NoError(t, os.WriteFile(path, []byte("# pragma version ^0.3.10\n"), 0o644))

	d := fs.NewDigester()

	digest1, err := d.ContentDigest(path)
	require.NoError(t, err)
	assert.Len(t, digest1, 64, "sha256 hex digest")

	digest2, err := d.ContentDigest(path)
	require.NoError(t, err)
	assert.Equal(t, digest1, digest2, "digest is deterministic")

	// A single changed byte changes the digest.
	require.NoError(t, os.WriteFile(path, []byte("# pragma version ^0.3.11\n"), 0o644))
	digest3, err := d.ContentDigest(path)
	require.NoError(t, err)
	assert.NotEqual(t, digest1, digest3)
}

func TestContentDigest_MissingFile(t *testing.T) {
	d := fs.NewDigester()

	_, err := d.ContentDigest(filepath.Join(t.TempDir(), "missing.vy"))
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	d := fs.NewDigester()

	assert.Equal(t, d.Fingerprint("a", "b"), d.Fingerprint("a", "b"))
	assert.NotEqual(t, d.Fingerprint("a", "b"), d.Fingerprint("ab"), "separator prevents concatenation collisions")
	assert.NotEqual(t, d.Fingerprint("a", "b"), d.Fingerprint("b", "a"))
}
