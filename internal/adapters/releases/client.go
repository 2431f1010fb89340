// Package releases implements the release index client against the GitHub
// releases API.
package releases

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
	"resty.dev/v3"
)

const (
	requestTimeout = 120 * time.Second
	perPage        = 100

	// rateLimitRetries bounds the exponential backoff budget for throttled
	// requests. Other transport failures get exactly one retry.
	rateLimitRetries = 3
	retryBaseWait    = 500 * time.Millisecond
	retryMaxWait     = 8 * time.Second
)

var _ ports.IndexClient = (*Client)(nil)

// Client queries the remote release catalog, paginated, newest first.
type Client struct {
	http     *resty.Client
	indexURL string
	platform string
	cache    *listCache
	logger   ports.Logger
}

// NewClient creates a release index client. An authentication token is read
// from the configured environment variable; absence only means stricter
// upstream rate limits.
func NewClient(cfg *domain.Config, digester ports.Digester, logger ports.Logger) (*Client, error) {
	platform, err := assetSubstring()
	if err != nil {
		return nil, err
	}

	httpClient := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", "vvm").
		SetRetryCount(rateLimitRetries).
		SetRetryWaitTime(retryBaseWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryConditions(func(r *resty.Response, err error) bool {
			return err == nil && isRateLimited(r)
		})

	if token := os.Getenv(cfg.TokenEnvVar); token != "" {
		httpClient.SetAuthToken(token)
	}

	return &Client{
		http:     httpClient,
		indexURL: cfg.IndexURL,
		platform: platform,
		cache:    newListCache(cfg, digester, platform),
		logger:   logger,
	}, nil
}

// catalogRelease mirrors the JSON shape of one release record upstream.
type catalogRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// Fetch returns all releases available for this platform, newest first.
func (c *Client) Fetch(ctx context.Context) ([]domain.Release, error) {
	var all []domain.Release

	for page := 1; ; page++ {
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, c.toReleases(batch)...)
		if len(batch) < perPage {
			break
		}
	}

	domain.SortReleasesNewestFirst(all)
	return all, nil
}

// FetchCached serves the cached list when fresh, refetching otherwise. Only
// the list command uses this path; install always calls Fetch.
func (c *Client) FetchCached(ctx context.Context) ([]domain.Release, error) {
	if cached, ok := c.cache.read(); ok {
		return cached, nil
	}

	fetched, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.write(fetched); err != nil {
		// A broken list cache must not fail the listing itself.
		c.logger.Warn("failed to write release list cache: " + err.Error())
	}
	return fetched, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]catalogRelease, error) {
	url := fmt.Sprintf("%s?per_page=%d&page=%d", c.indexURL, perPage, page)

	var batch []catalogRelease
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&batch).
		Get(url)
	if err != nil {
		// Transport failure: retry once, then give up.
		resp, err = c.http.R().
			SetContext(ctx).
			SetResult(&batch).
			Get(url)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrNetworkFailed.Error()), "url", url)
		}
	}

	if isRateLimited(resp) {
		// The backoff budget is already spent by the retry conditions.
		return nil, zerr.With(domain.ErrRateLimited, "url", url)
	}
	if !resp.IsSuccess() {
		netErr := zerr.With(domain.ErrNetworkFailed, "url", url)
		return nil, zerr.With(netErr, "status", resp.StatusCode())
	}

	return batch, nil
}

func (c *Client) toReleases(batch []catalogRelease) []domain.Release {
	var out []domain.Release
	for _, rel := range batch {
		versionID, err := domain.ParseVersionID(rel.TagName)
		if err != nil {
			// Upstream occasionally tags non-release refs; skip them.
			continue
		}
		for _, asset := range rel.Assets {
			if !strings.Contains(asset.Name, c.platform) {
				continue
			}
			out = append(out, domain.Release{
				Version:     versionID,
				AssetName:   asset.Name,
				DownloadURL: asset.BrowserDownloadURL,
			})
			break
		}
	}
	return out
}

// isRateLimited reports whether the response is an upstream throttle. GitHub
// answers 403 with a zeroed remaining quota for unauthenticated overuse, and
// 429 for secondary limits.
func isRateLimited(r *resty.Response) bool {
	if r == nil {
		return false
	}
	if r.StatusCode() == 429 {
		return true
	}
	return r.StatusCode() == 403 && r.Header().Get("X-Ratelimit-Remaining") == "0"
}
