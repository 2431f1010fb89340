//nolint:testpackage // Exercises pointer internals alongside the port surface.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.vvm.dev/vvm/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(&domain.Config{Home: t.TempDir()}, nopLogger{})
}

func serveArtifact(t *testing.T, body []byte, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInstall_PublishesExecutableBinary(t *testing.T) {
	body := []byte("#!/bin/sh\necho vyper\n")
	srv := serveArtifact(t, body, nil)
	s := newTestStore(t)

	release := domain.Release{Version: "0.3.10", DownloadURL: srv.URL}
	require.NoError(t, s.Install(context.Background(), release))

	path := domain.BinaryPath(s.home, "0.3.10")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), info.Size())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(domain.ExecPerm), info.Mode().Perm())
	}
	assert.True(t, s.IsInstalled("0.3.10"))
}

func TestInstall_AlreadyInstalledSkipsDownload(t *testing.T) {
	var hits atomic.Int64
	srv := serveArtifact(t, []byte("binary"), &hits)
	s := newTestStore(t)

	release := domain.Release{Version: "0.3.10", DownloadURL: srv.URL}
	require.NoError(t, s.Install(context.Background(), release))
	require.NoError(t, s.Install(context.Background(), release))

	assert.Equal(t, int64(1), hits.Load())
}

func TestInstall_ChecksumVerification(t *testing.T) {
	body := []byte("the real artifact")
	sum := sha256.Sum256(body)
	srv := serveArtifact(t, body, nil)

	tests := []struct {
		name     string
		checksum string
		wantErr  error
	}{
		{name: "matching checksum", checksum: hex.EncodeToString(sum[:])},
		{name: "0x-prefixed checksum", checksum: "0x" + hex.EncodeToString(sum[:])},
		{name: "absent checksum skips verification", checksum: ""},
		{name: "mismatch is rejected", checksum: "deadbeef", wantErr: domain.ErrChecksumMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			err := s.Install(context.Background(), domain.Release{
				Version:     "0.4.0",
				DownloadURL: srv.URL,
				Checksum:    tt.checksum,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, s.IsInstalled("0.4.0"))
				return
			}
			require.NoError(t, err)
			assert.True(t, s.IsInstalled("0.4.0"))
		})
	}
}

func TestInstall_EmptyArtifactRejected(t *testing.T) {
	srv := serveArtifact(t, nil, nil)
	s := newTestStore(t)

	err := s.Install(context.Background(), domain.Release{Version: "0.3.7", DownloadURL: srv.URL})
	require.ErrorIs(t, err, domain.ErrEmptyArtifact)
	assert.False(t, s.IsInstalled("0.3.7"))
}

func TestInstall_HTTPErrorRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	s := newTestStore(t)

	err := s.Install(context.Background(), domain.Release{Version: "0.3.7", DownloadURL: srv.URL})
	require.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestActivate_RequiresInstalledVersion(t *testing.T) {
	s := newTestStore(t)

	err := s.Activate("0.3.10")
	require.ErrorIs(t, err, domain.ErrNotInstalled)

	_, err = s.ResolveActive()
	require.ErrorIs(t, err, domain.ErrNoActiveVersion)
}

func TestActivate_ThenResolve(t *testing.T) {
	srv := serveArtifact(t, []byte("binary"), nil)
	s := newTestStore(t)
	require.NoError(t, s.Install(context.Background(), domain.Release{Version: "0.3.10", DownloadURL: srv.URL}))

	require.NoError(t, s.Activate("0.3.10"))

	active, err := s.ResolveActive()
	require.NoError(t, err)
	assert.Equal(t, "0.3.10", active.ID)
	assert.Equal(t, domain.BinaryPath(s.home, "0.3.10"), active.BinaryPath)
}

func TestResolveActive_StalePointerRejected(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.home, domain.DirPerm))
	require.NoError(t, os.WriteFile(domain.PointerPath(s.home), []byte("0.2.16\n"), domain.FilePerm))

	_, err := s.ResolveActive()
	require.ErrorIs(t, err, domain.ErrNoActiveVersion)
}

func TestRemove(t *testing.T) {
	srv := serveArtifact(t, []byte("binary"), nil)

	t.Run("not installed", func(t *testing.T) {
		s := newTestStore(t)
		require.ErrorIs(t, s.Remove("0.3.10"), domain.ErrNotInstalled)
	})

	t.Run("removes version directory", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Install(context.Background(), domain.Release{Version: "0.3.10", DownloadURL: srv.URL}))

		require.NoError(t, s.Remove("0.3.10"))

		assert.False(t, s.IsInstalled("0.3.10"))
		_, err := os.Stat(domain.VersionDir(s.home, "0.3.10"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("removing the active version clears the pointer", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Install(context.Background(), domain.Release{Version: "0.3.10", DownloadURL: srv.URL}))
		require.NoError(t, s.Activate("0.3.10"))

		require.NoError(t, s.Remove("0.3.10"))

		_, err := s.ResolveActive()
		require.ErrorIs(t, err, domain.ErrNoActiveVersion)
	})

	t.Run("removing an inactive version keeps the pointer", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Install(context.Background(), domain.Release{Version: "0.3.9", DownloadURL: srv.URL}))
		require.NoError(t, s.Install(context.Background(), domain.Release{Version: "0.3.10", DownloadURL: srv.URL}))
		require.NoError(t, s.Activate("0.3.10"))

		require.NoError(t, s.Remove("0.3.9"))

		active, err := s.ResolveActive()
		require.NoError(t, err)
		assert.Equal(t, "0.3.10", active.ID)
	})
}

func TestListInstalled(t *testing.T) {
	srv := serveArtifact(t, []byte("binary"), nil)
	s := newTestStore(t)

	got, err := s.ListInstalled()
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, id := range []string{"0.3.10", "0.2.16", "0.4.0"} {
		require.NoError(t, s.Install(context.Background(), domain.Release{Version: id, DownloadURL: srv.URL}))
	}

	// Non-version clutter in the home directory must not surface as
	// installed versions.
	require.NoError(t, os.MkdirAll(domain.CachePath(s.home), domain.DirPerm))
	require.NoError(t, os.MkdirAll(domain.VersionDir(s.home, "0.9.9"), domain.DirPerm)) // dir without binary
	require.NoError(t, os.WriteFile(filepath.Join(s.home, ".tmp-vyper-1234"), []byte("partial"), domain.FilePerm))

	got, err = s.ListInstalled()
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"0.2.16", "0.3.10", "0.4.0"}, ids)
}
