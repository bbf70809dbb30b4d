// Package app implements the application layer for cachet.
package app

import (
	"context"
	"encoding/json"
	"runtime"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/cachet/internal/engine/cache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.Filesystem
	hasher       ports.IdentityHasher
	store        ports.EntryStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fs ports.Filesystem,
	hasher ports.IdentityHasher,
	store ports.EntryStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		fs:           fs,
		hasher:       hasher,
		store:        store,
		logger:       log,
	}
}

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	Root       string
	NoCache    bool
	Verbose    bool
	JSON       bool
}

// GetOptions configures Get.
type GetOptions struct {
	Options
	Namespace string
}

// MissingDep is a referenced path that could not be resolved, with its marker.
type MissingDep struct {
	Path   string
	Marker string
}

// PutOptions configures Put.
type PutOptions struct {
	Options
	Namespace string
	Content   []byte
	Info      json.RawMessage
	Deps      []string
	Missing   []MissingDep
	Merge     []string
}

// StatusOptions configures Status.
type StatusOptions struct {
	Options
	Namespace string
}

// SourceStatus is the validation result for one source file.
type SourceStatus struct {
	Source          string
	Status          domain.Status
	ResolvedMissing []string
}

// InspectResult describes the persisted state of one entry.
type InspectResult struct {
	Source string
	Keys   domain.Keys
	Status domain.Status
	Record *domain.Record
}

// CleanOptions configures Clean.
type CleanOptions struct {
	Options
	All bool
}

// service loads the configuration, applies command line overrides and builds the cache service.
func (a *App) service(opts Options) (*cache.Service, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Root != "" {
		cfg.Root = opts.Root
	}
	if opts.NoCache {
		cfg.Enabled = false
	}

	a.logger.SetJSON(cfg.JSON || opts.JSON)
	a.logger.SetVerbose(cfg.Verbose || opts.Verbose)

	return cache.New(cfg, a.fs, a.hasher, a.store, a.logger), nil
}

// Get reverts the entry for source and returns its persisted output.
// A stale, missing or disabled entry yields an error wrapping domain.ErrCacheMiss.
func (a *App) Get(_ context.Context, source string, opts GetOptions) (*cache.Output, error) {
	svc, err := a.service(opts.Options)
	if err != nil {
		return nil, err
	}

	entry, err := svc.Entry(source, opts.Namespace)
	if entry == nil {
		return nil, err
	}

	var out cache.Output
	if !entry.Revert(&out) {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrCacheMiss, "no reusable output"),
			"reason", entry.Status().String()), "source", source)
	}

	return &out, nil
}

// Put records the dependencies of source and saves content and info for it.
// Dependencies are added first; merged entries only contribute paths not already tracked.
func (a *App) Put(_ context.Context, source string, opts PutOptions) error {
	if opts.Info != nil && !json.Valid(opts.Info) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidInfo, "cannot save entry"), "source", source)
	}

	svc, err := a.service(opts.Options)
	if err != nil {
		return err
	}

	entry, err := svc.Entry(source, opts.Namespace)
	if err != nil {
		return err
	}

	entry.AddDeps(opts.Deps...)
	for _, m := range opts.Missing {
		entry.AddMissingDeps(m.Path, m.Marker)
	}

	for _, path := range opts.Merge {
		other, err := svc.Entry(path, opts.Namespace)
		if err != nil {
			return zerr.Wrap(err, "cannot merge dependencies")
		}
		if !other.Revert(nil) {
			a.logger.Warn("merge source " + path + " has no reusable entry, merging nothing")
			continue
		}
		if err := entry.MergeDeps(cache.FromEntry(other)); err != nil {
			return err
		}
	}

	var info any
	if opts.Info != nil {
		info = opts.Info
	}
	if err := entry.Save(opts.Content, info); err != nil {
		return zerr.Wrap(err, "failed to save entry")
	}

	a.logger.Info("cached " + entry.Source())
	return nil
}

// Status validates the entries of sources concurrently, one entry per goroutine.
// Results are returned in the order of sources.
func (a *App) Status(ctx context.Context, sources []string, opts StatusOptions) ([]SourceStatus, error) {
	if len(sources) == 0 {
		return nil, domain.ErrNoSourcesSpecified
	}

	svc, err := a.service(opts.Options)
	if err != nil {
		return nil, err
	}
	if _, err := svc.NamespaceDir(opts.Namespace); err != nil {
		return nil, err
	}

	results := make([]SourceStatus, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Construction failures leave an unusable entry whose status reports them.
			entry, _ := svc.Entry(source, opts.Namespace)
			results[i] = SourceStatus{
				Source:          source,
				Status:          entry.Status(),
				ResolvedMissing: resolvedMissing(entry),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolvedMissing reports the missing dependencies of the persisted record that now resolve.
func resolvedMissing(entry *cache.Entry) []string {
	if !entry.Usable() {
		return nil
	}
	rec, err := entry.Stored()
	if err != nil || rec == nil {
		return nil
	}
	for path, marker := range rec.MissingDeps {
		entry.AddMissingDeps(path, marker)
	}
	return entry.ResolvedMissingDeps()
}

// Inspect returns the persisted record of source without mutating anything.
func (a *App) Inspect(_ context.Context, source string, opts GetOptions) (*InspectResult, error) {
	svc, err := a.service(opts.Options)
	if err != nil {
		return nil, err
	}

	entry, err := svc.Entry(source, opts.Namespace)
	if entry == nil {
		return nil, err
	}

	rec, err := entry.Stored()
	if err != nil {
		return nil, err
	}

	return &InspectResult{
		Source: entry.Source(),
		Keys:   entry.Keys(),
		Status: entry.Status(),
		Record: rec,
	}, nil
}

// Stats reports the usage of namespace, or of the whole cache for the empty name.
func (a *App) Stats(_ context.Context, namespace string, opts Options) (domain.Usage, error) {
	svc, err := a.service(opts)
	if err != nil {
		return domain.Usage{}, err
	}
	return svc.Stats(namespace)
}

// Clean evicts namespace. Removing the whole cache requires opts.All.
// It reports whether anything was removed.
func (a *App) Clean(_ context.Context, namespace string, opts CleanOptions) (bool, error) {
	if opts.All {
		namespace = ""
	} else if namespace == "" {
		return false, domain.ErrNoNamespaceSpecified
	}

	svc, err := a.service(opts.Options)
	if err != nil {
		return false, err
	}

	removed, err := svc.Clean(namespace)
	if err != nil {
		return false, err
	}

	target := "cache root"
	if namespace != "" {
		target = "namespace " + namespace
	}
	if removed {
		a.logger.Info("cleaned " + target)
	} else {
		a.logger.Info(target + " is already empty")
	}
	return removed, nil
}
