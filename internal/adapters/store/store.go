// Package store owns the installed-versions directory and the active
// pointer. Every mutation publishes state with write-to-temp-then-rename so
// a concurrent reader observes either the pre- or post-state, never a
// partially written one.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
	"resty.dev/v3"
)

const downloadTimeout = 120 * time.Second

var _ ports.VersionStore = (*Store)(nil)

// Store implements ports.VersionStore on the vvm home directory.
type Store struct {
	home   string
	http   *resty.Client
	logger ports.Logger
}

// NewStore creates a version store rooted at the configured home directory.
func NewStore(cfg *domain.Config, logger ports.Logger) *Store {
	return &Store{
		home:   cfg.Home,
		http:   resty.New().SetTimeout(downloadTimeout).SetHeader("User-Agent", "vvm"),
		logger: logger,
	}
}

// Install downloads and installs the given release. Installing a version
// that is already present is a no-op success and performs no network request.
func (s *Store) Install(ctx context.Context, release domain.Release) error {
	if s.IsInstalled(release.Version) {
		s.logger.Info("vyper " + release.Version + " is already installed")
		return nil
	}

	if err := os.MkdirAll(s.home, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	binbytes, err := s.download(ctx, release)
	if err != nil {
		return err
	}

	if err := verifyArtifact(binbytes, release); err != nil {
		return err
	}

	return s.publishBinary(release.Version, binbytes)
}

func (s *Store) download(ctx context.Context, release domain.Release) ([]byte, error) {
	resp, err := s.http.R().SetContext(ctx).Get(release.DownloadURL)
	if err != nil {
		dlErr := zerr.Wrap(err, domain.ErrDownloadFailed.Error())
		return nil, zerr.With(dlErr, "version", release.Version)
	}
	if !resp.IsSuccess() {
		dlErr := zerr.With(domain.ErrDownloadFailed, "version", release.Version)
		dlErr = zerr.With(dlErr, "url", release.DownloadURL)
		return nil, zerr.With(dlErr, "status", resp.StatusCode())
	}
	return resp.Bytes(), nil
}

func verifyArtifact(binbytes []byte, release domain.Release) error {
	if len(binbytes) == 0 {
		return zerr.With(domain.ErrEmptyArtifact, "version", release.Version)
	}

	// No checksum in the catalog means verification is skipped and
	// transport integrity is trusted.
	if release.Checksum == "" {
		return nil
	}

	sum := sha256.Sum256(binbytes)
	if hex.EncodeToString(sum[:]) != strings.ToLower(strings.TrimPrefix(release.Checksum, "0x")) {
		mismatch := zerr.With(domain.ErrChecksumMismatch, "version", release.Version)
		return zerr.With(mismatch, "expected", release.Checksum)
	}
	return nil
}

// publishBinary writes the binary to a temp file in the home directory and
// renames it into its final slot. The temp-file window is the only
// "installing" state and is never reported as installed; an interrupted
// install leaves an orphaned temp file, nothing more.
func (s *Store) publishBinary(versionID string, binbytes []byte) error {
	finalPath := domain.BinaryPath(s.home, versionID)
	if err := os.MkdirAll(filepath.Dir(finalPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(s.home, ".tmp-vyper-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(binbytes); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Chmod(domain.ExecPerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "version", versionID)
	}
	return nil
}

// Remove deletes the version from the store. Removing the active version
// clears the pointer first so it never dangles.
func (s *Store) Remove(versionID string) error {
	if !s.IsInstalled(versionID) {
		return zerr.With(domain.ErrNotInstalled, "version", versionID)
	}

	if active, err := s.readPointer(); err == nil && active == versionID {
		if err := s.writePointer(""); err != nil {
			return err
		}
	}

	if err := os.RemoveAll(domain.VersionDir(s.home, versionID)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "version", versionID)
	}
	return nil
}

// Activate points the active pointer at the given installed version.
func (s *Store) Activate(versionID string) error {
	if !s.IsInstalled(versionID) {
		return zerr.With(domain.ErrNotInstalled, "version", versionID)
	}
	return s.writePointer(versionID)
}

// ResolveActive reads the active pointer. An unset pointer, or one naming a
// version that is no longer on disk, reports ErrNoActiveVersion; a stale
// pointer never falls back to the deleted version.
func (s *Store) ResolveActive() (domain.Version, error) {
	versionID, err := s.readPointer()
	if err != nil {
		return domain.Version{}, err
	}
	if versionID == "" {
		return domain.Version{}, domain.ErrNoActiveVersion
	}
	if !s.IsInstalled(versionID) {
		return domain.Version{}, zerr.With(domain.ErrNoActiveVersion, "stale_version", versionID)
	}
	return domain.Version{ID: versionID, BinaryPath: domain.BinaryPath(s.home, versionID)}, nil
}

// ListInstalled enumerates the store directory, ascending by version.
// Dotfiles, the cache tree and orphaned temp files are not versions.
func (s *Store) ListInstalled() ([]domain.Version, error) {
	entries, err := os.ReadDir(s.home)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var versions []domain.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versionID, err := domain.ParseVersionID(entry.Name())
		if err != nil {
			continue
		}
		if !s.IsInstalled(versionID) {
			continue
		}
		versions = append(versions, domain.Version{
			ID:         versionID,
			BinaryPath: domain.BinaryPath(s.home, versionID),
		})
	}

	domain.SortVersionsAscending(versions)
	return versions, nil
}

// IsInstalled reports whether the version's binary has been published. Only
// the final rename makes this true; a half-written temp file does not count.
func (s *Store) IsInstalled(versionID string) bool {
	info, err := os.Stat(domain.BinaryPath(s.home, versionID))
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

func (s *Store) readPointer() (string, error) {
	data, err := os.ReadFile(domain.PointerPath(s.home)) //nolint:gosec // Path is rooted in the vvm home
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrNoActiveVersion
		}
		return "", zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Store) writePointer(versionID string) error {
	if err := os.MkdirAll(s.home, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(s.home, ".tmp-pointer-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(versionID); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.Rename(tmpPath, domain.PointerPath(s.home)); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}
