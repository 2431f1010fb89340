package ports

// Digester computes content digests for cache keying.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// ContentDigest returns the hex-encoded sha256 of the file's bytes.
	ContentDigest(path string) (string, error)

	// Fingerprint returns a fast 64-bit hash over the given parts. Not a
	// cache key; used for cheap cache-file validation.
	Fingerprint(parts ...string) uint64
}
