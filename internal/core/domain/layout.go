package domain

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HomeDirName is the name of the vvm home directory under $HOME.
	HomeDirName = ".vvm"

	// HomeEnvVar overrides the home directory location when set.
	HomeEnvVar = "VVM_HOME"

	// PointerFileName is the active-pointer record inside the home directory.
	// Its content is a single canonical version id; empty means unset.
	PointerFileName = ".global-version"

	// IndexCacheFileName is the release-list cache inside the home directory.
	IndexCacheFileName = ".release-index.json"

	// CacheDirName is the outcome cache tree inside the home directory.
	// The whole tree is safe to delete at any time.
	CacheDirName = "cache"

	// ConfigFileName is the optional configuration file inside the home directory.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for installed compiler binaries.
	ExecPerm = 0o755
)

// DefaultHome returns the vvm home directory: $VVM_HOME if set, otherwise
// ~/.vvm.
func DefaultHome() (string, error) {
	if h := os.Getenv(HomeEnvVar); h != "" {
		return h, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, HomeDirName), nil
}

// VersionDir returns the per-version directory inside the store.
func VersionDir(home, versionID string) string {
	return filepath.Join(home, versionID)
}

// BinaryName returns the filename of an installed compiler binary.
func BinaryName(versionID string) string {
	return fmt.Sprintf("vyper-%s", versionID)
}

// BinaryPath returns the full path of an installed compiler binary.
func BinaryPath(home, versionID string) string {
	return filepath.Join(VersionDir(home, versionID), BinaryName(versionID))
}

// PointerPath returns the full path of the active-pointer record.
func PointerPath(home string) string {
	return filepath.Join(home, PointerFileName)
}

// CachePath returns the outcome cache root.
func CachePath(home string) string {
	return filepath.Join(home, CacheDirName)
}
