// Package app implements the application layer for vvm: version lifecycle
// orchestration and the caching compiler proxy.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// installConcurrency bounds parallel artifact downloads.
const installConcurrency = 4

// App represents the main application logic.
type App struct {
	index    ports.IndexClient
	store    ports.VersionStore
	cache    ports.OutcomeCache
	runner   ports.Runner
	digester ports.Digester
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	index ports.IndexClient,
	store ports.VersionStore,
	cache ports.OutcomeCache,
	runner ports.Runner,
	digester ports.Digester,
	log ports.Logger,
) *App {
	return &App{
		index:    index,
		store:    store,
		cache:    cache,
		runner:   runner,
		digester: digester,
		logger:   log,
	}
}

// ListOptions configuration for the List method.
type ListOptions struct {
	// NoCache forces a catalog refetch even when a fresh list cache exists.
	NoCache bool
}

// Snapshot is the state the list command renders.
type Snapshot struct {
	// Available holds catalog releases for this platform, newest first.
	Available []domain.Release
	// Installed holds installed versions, ascending.
	Installed []domain.Version
	// ActiveID is the active version id, empty when none is set.
	ActiveID string
}

// List assembles the catalog, the installed set and the active pointer.
func (a *App) List(ctx context.Context, opts ListOptions) (Snapshot, error) {
	var snap Snapshot
	var err error

	if opts.NoCache {
		snap.Available, err = a.index.Fetch(ctx)
	} else {
		snap.Available, err = a.index.FetchCached(ctx)
	}
	if err != nil {
		return Snapshot{}, err
	}

	snap.Installed, err = a.store.ListInstalled()
	if err != nil {
		return Snapshot{}, err
	}

	active, err := a.store.ResolveActive()
	switch {
	case err == nil:
		snap.ActiveID = active.ID
	case errors.Is(err, domain.ErrNoActiveVersion):
		// No pointer is a valid state for listing.
	default:
		return Snapshot{}, err
	}
	return snap, nil
}

// Install resolves and installs the given versions. Downloads run in
// parallel. When no version is active afterwards, the first requested
// version becomes active; an existing pointer is never touched.
func (a *App) Install(ctx context.Context, rawVersions []string) error {
	if len(rawVersions) == 0 {
		return zerr.With(domain.ErrInvalidVersion, "reason", "no versions given")
	}

	versionIDs := make([]string, 0, len(rawVersions))
	for _, raw := range rawVersions {
		id, err := domain.ParseVersionID(raw)
		if err != nil {
			return err
		}
		versionIDs = append(versionIDs, id)
	}

	pending := make([]string, 0, len(versionIDs))
	for _, id := range versionIDs {
		if a.store.IsInstalled(id) {
			a.logger.Info("vyper " + id + " is already installed")
			continue
		}
		pending = append(pending, id)
	}

	var targets []domain.Release
	if len(pending) > 0 {
		// Install paths always hit the live catalog; a day-old cached list
		// must not hide a release published an hour ago.
		releases, err := a.index.Fetch(ctx)
		if err != nil {
			return err
		}

		targets = make([]domain.Release, 0, len(pending))
		for _, id := range pending {
			release, ok := domain.FindRelease(releases, id)
			if !ok {
				return zerr.With(domain.ErrUnknownVersion, "version", id)
			}
			targets = append(targets, release)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(installConcurrency)
	for _, release := range targets {
		g.Go(func() error {
			if err := a.store.Install(gctx, release); err != nil {
				return err
			}
			a.logger.Info("installed vyper " + release.Version)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if _, err := a.store.ResolveActive(); errors.Is(err, domain.ErrNoActiveVersion) {
		if err := a.store.Activate(versionIDs[0]); err != nil {
			return err
		}
		a.logger.Info("now using vyper " + versionIDs[0])
	}
	return nil
}

// Use makes the given installed version the active one.
func (a *App) Use(rawVersion string) error {
	versionID, err := domain.ParseVersionID(rawVersion)
	if err != nil {
		return err
	}
	if err := a.store.Activate(versionID); err != nil {
		return zerr.Wrap(err, fmt.Sprintf("cannot use vyper %s", versionID))
	}
	a.logger.Info("now using vyper " + versionID)
	return nil
}

// Remove uninstalls the given version. Removing the active version leaves
// no version active.
func (a *App) Remove(rawVersion string) error {
	versionID, err := domain.ParseVersionID(rawVersion)
	if err != nil {
		return err
	}
	if err := a.store.Remove(versionID); err != nil {
		return err
	}
	a.logger.Info("removed vyper " + versionID)
	return nil
}

// RemoveAll uninstalls every version, clears the pointer and purges the
// outcome cache. Removal continues past individual failures.
func (a *App) RemoveAll() error {
	installed, err := a.store.ListInstalled()
	if err != nil {
		return err
	}

	var errs error
	for _, version := range installed {
		if err := a.store.Remove(version.ID); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", version.ID)))
			continue
		}
		a.logger.Info("removed vyper " + version.ID)
	}

	if err := a.cache.PurgeAll(); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// Run proxies one compiler invocation through the active version. Eligible
// invocations (a single argument that is not a flag) are answered from the
// outcome cache when possible; everything else passes straight through.
func (a *App) Run(ctx context.Context, args []string) (domain.Outcome, error) {
	active, err := a.store.ResolveActive()
	if err != nil {
		return domain.Outcome{}, err
	}

	if len(args) == 0 {
		return domain.Outcome{}, domain.ErrNoInputFile
	}

	digest := a.cacheKeyDigest(args)
	if digest != "" {
		if cached, err := a.cache.Lookup(active.ID, digest); err != nil {
			// A broken cache must never block a compile.
			a.logger.Error(err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	outcome, err := a.runner.Run(ctx, active.BinaryPath, args)
	if err != nil {
		return domain.Outcome{}, err
	}

	if digest != "" && outcome.Success() {
		if err := a.cache.Store(active.ID, digest, outcome); err != nil {
			a.logger.Error(err)
		}
	}
	return outcome, nil
}

// cacheKeyDigest returns the content digest for cacheable invocations and
// "" for everything else. Only a single non-flag argument is cacheable:
// extra flags change compiler output without changing the input file, so
// those invocations must not share cache entries.
func (a *App) cacheKeyDigest(args []string) string {
	if len(args) != 1 || strings.HasPrefix(args[0], "-") {
		return ""
	}
	digest, err := a.digester.ContentDigest(args[0])
	if err != nil {
		// Unreadable input: let the compiler produce its own diagnostics.
		return ""
	}
	return digest
}
