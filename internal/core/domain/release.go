package domain

import "sort"

// Release is a catalog entry for one downloadable compiler build on this
// platform.
type Release struct {
	// Version is the canonical version identifier.
	Version string `json:"version"`
	// AssetName is the upstream artifact filename.
	AssetName string `json:"assetName"`
	// DownloadURL is where the artifact is fetched from.
	DownloadURL string `json:"downloadUrl"`
	// Checksum is the published sha256 of the artifact, hex encoded. Empty
	// when upstream publishes none; verification is then skipped.
	Checksum string `json:"checksum,omitempty"`
}

// SortReleasesNewestFirst sorts in place, newest first.
func SortReleasesNewestFirst(releases []Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return CompareVersionIDs(releases[i].Version, releases[j].Version) > 0
	})
}

// FindRelease returns the release for the given version id, if present.
func FindRelease(releases []Release, versionID string) (Release, bool) {
	for _, rel := range releases {
		if rel.Version == versionID {
			return rel, true
		}
	}
	return Release{}, false
}
