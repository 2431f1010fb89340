package releases

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
)

const listCacheFormat = "vvm-release-index-1"

// listCache is the TTL-bounded on-disk cache of the fetched release list.
// It exists purely for the list command's convenience; nothing else trusts it.
type listCache struct {
	path string
	ttl  time.Duration
	// key fingerprints (indexURL, platform) so a config change reads as stale.
	key uint64
}

func newListCache(cfg *domain.Config, digester ports.Digester, platform string) *listCache {
	return &listCache{
		path: filepath.Join(cfg.Home, domain.IndexCacheFileName),
		ttl:  cfg.ListCacheTTL,
		key:  digester.Fingerprint(cfg.IndexURL, platform),
	}
}

type listCacheFile struct {
	Format    string           `json:"_format"`
	Key       uint64           `json:"key"`
	FetchedAt time.Time        `json:"fetchedAt"`
	Releases  []domain.Release `json:"releases"`
}

// read returns the cached list when the file is valid, keyed for this
// configuration, and younger than the TTL.
func (c *listCache) read() ([]domain.Release, bool) {
	data, err := os.ReadFile(c.path) //nolint:gosec // Path is rooted in the vvm home
	if err != nil {
		return nil, false
	}

	var file listCacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, false
	}
	if file.Format != listCacheFormat || file.Key != c.key {
		return nil, false
	}
	if time.Since(file.FetchedAt) > c.ttl {
		return nil, false
	}
	return file.Releases, true
}

func (c *listCache) write(releases []domain.Release) error {
	data, err := json.MarshalIndent(listCacheFile{
		Format:    listCacheFormat,
		Key:       c.key,
		FetchedAt: time.Now(),
		Releases:  releases,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal release list cache")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create vvm home directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".tmp-index-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file for release list cache")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write release list cache")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close release list cache temp file")
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to publish release list cache")
	}
	return nil
}
