// Package domain holds the core types of the version manager: versions,
// releases, compilation outcomes and the on-disk layout they live in.
package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Version is an installed compiler version.
type Version struct {
	// ID is the canonical version identifier, without a leading "v".
	ID string
	// BinaryPath is the absolute path of the installed binary.
	BinaryPath string
}

// ParseVersionID canonicalizes a user- or catalog-supplied version string.
// A leading "v" and surrounding whitespace are tolerated; anything that is
// not valid semver is rejected with ErrInvalidVersion.
func ParseVersionID(s string) (string, error) {
	id := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if id == "" || !semver.IsValid("v"+id) {
		return "", zerr.With(ErrInvalidVersion, "input", s)
	}
	return id, nil
}

// CompareVersionIDs orders two canonical version ids semantically, returning
// -1, 0 or +1.
func CompareVersionIDs(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

// SortVersionsAscending sorts in place, oldest first.
func SortVersionsAscending(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareVersionIDs(versions[i].ID, versions[j].ID) < 0
	})
}
