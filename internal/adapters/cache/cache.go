// Package cache is the content-addressed outcome cache. Entries live at
// <home>/cache/<version>/<digest>.json and the whole tree is safe to delete
// at any time.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
)

var _ ports.OutcomeCache = (*Cache)(nil)

// Cache implements ports.OutcomeCache on the filesystem.
type Cache struct {
	root string
}

// NewCache creates an outcome cache rooted under the configured home.
func NewCache(cfg *domain.Config) *Cache {
	return &Cache{root: domain.CachePath(cfg.Home)}
}

func (c *Cache) entryPath(versionID, digest string) string {
	return filepath.Join(c.root, versionID, digest+".json")
}

// Lookup returns the cached outcome for the key, or nil, nil on a miss.
// Unreadable or foreign-format entries are misses, not errors; the cache
// never blocks a compilation.
func (c *Cache) Lookup(versionID, digest string) (*domain.Outcome, error) {
	data, err := os.ReadFile(c.entryPath(versionID, digest)) //nolint:gosec // Path is rooted in the cache tree
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, nil
	}
	if entry.Format != domain.CacheFormat || entry.Version != versionID || entry.Digest != digest {
		return nil, nil
	}
	return &entry.Outcome, nil
}

// Store writes the outcome under the key. The entry is written to a temp
// file and renamed into place, so a crash mid-write never leaves a readable
// partial entry.
func (c *Cache) Store(versionID, digest string, outcome domain.Outcome) error {
	entry := domain.CacheEntry{
		Format:   domain.CacheFormat,
		Version:  versionID,
		Digest:   digest,
		Outcome:  outcome,
		CachedAt: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	dir := filepath.Join(c.root, versionID)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, ".tmp-entry-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Rename(tmpPath, c.entryPath(versionID, digest)); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// PurgeAll deletes the entire cache tree.
func (c *Cache) PurgeAll() error {
	if err := os.RemoveAll(c.root); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}
