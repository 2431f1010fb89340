// Package fs provides filesystem hashing for cache keys.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/ports"
)

var _ ports.Digester = (*Digester)(nil)

// Digester computes content digests and fast fingerprints.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// ContentDigest computes the hex-encoded sha256 of a file's bytes. This is
// the cache-key digest, so a collision-resistant hash is required.
func (d *Digester) ContentDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Fingerprint computes a fast xxhash64 over the given parts with zero-byte
// separators. Used for cheap validation keys, never for cache addressing.
func (d *Digester) Fingerprint(parts ...string) uint64 {
	hasher := xxhash.New()
	for _, p := range parts {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}
