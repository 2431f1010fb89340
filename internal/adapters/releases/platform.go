package releases

import (
	"runtime"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
)

// assetSubstring returns the platform tag embedded in upstream asset names.
// Release assets are published per OS only; both amd64 and arm64 share them.
func assetSubstring() (string, error) {
	switch runtime.GOOS {
	case "linux":
		return "linux", nil
	case "darwin":
		return "darwin", nil
	case "windows":
		return "windows", nil
	default:
		return "", zerr.With(domain.ErrUnsupportedPlatform, "os", runtime.GOOS)
	}
}
