// Package app implements the application layer for stale: it brackets the
// engine's synchronous evaluation phase with store loading up front and
// baseline recording at the end.
package app

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/outdated"
	"go.trai.ch/zerr"
)

// Decision is the outcome for one checked object.
type Decision struct {
	Ref      string
	Outdated bool
	Reason   string
}

// Report is the ordered list of decisions for one check run, items first,
// then layouts, in collection order.
type Report struct {
	Decisions []Decision
}

// OutdatedCount returns how many objects need recompilation.
func (r *Report) OutdatedCount() int {
	n := 0
	for _, d := range r.Decisions {
		if d.Outdated {
			n++
		}
	}
	return n
}

// App wires the loader, stores and engine into the check workflow.
type App struct {
	loader      ports.SiteLoader
	opener      ports.StateOpener
	checksummer ports.Checksummer
	logger      ports.Logger
	telemetry   ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.SiteLoader,
	opener ports.StateOpener,
	checksummer ports.Checksummer,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:      loader,
		opener:      opener,
		checksummer: checksummer,
		logger:      logger,
		telemetry:   telemetry,
	}
}

// Check loads the site at dir, decides outdatedness for every item and
// layout, and returns the report. When record is true the current
// fingerprints, sequences and dependency graph are persisted as the
// baseline for the next run.
func (a *App) Check(ctx context.Context, dir string, record bool) (*Report, error) {
	site, err := a.loader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load site")
	}

	store, err := a.opener.Open(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open state store")
	}

	batch, err := a.checksummer.BatchFor(site)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compute checksums")
	}

	deps := outdated.NewDependencyStore(site)
	if snap, ok := store.Graph(); ok {
		if err := deps.Load(snap); err != nil {
			return nil, zerr.Wrap(err, "failed to load dependency graph")
		}
	}

	checker := outdated.NewChecker(site, batch, store, store, store, deps)
	report, err := a.decide(ctx, site, checker)
	if err != nil {
		return nil, err
	}

	if record {
		if err := a.record(site, batch, store, deps); err != nil {
			return nil, zerr.Wrap(err, "failed to record baseline")
		}
	}
	return report, nil
}

// decide fans the per-object queries out over a bounded worker group. The
// checker's memo tables are shared and lock-protected; sibling order does
// not affect any decision.
func (a *App) decide(ctx context.Context, site *domain.Site, checker *outdated.Checker) (*Report, error) {
	objects := make([]domain.Object, 0, len(site.Items.All())+len(site.Layouts.All()))
	for _, item := range site.Items.All() {
		objects = append(objects, item)
	}
	for _, layout := range site.Layouts.All() {
		objects = append(objects, layout)
	}

	decisions := make([]Decision, len(objects))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, obj := range objects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vertex := a.telemetry.Record(obj.Reference().String())
			status, err := checker.Status(obj)
			if err != nil {
				vertex.Complete(err)
				return err
			}

			d := Decision{Ref: obj.Reference().String(), Outdated: status.Outdated()}
			if reason := status.First(); reason != nil {
				d.Reason = string(reason.Kind)
				vertex.Log(d.Reason)
				vertex.Complete(nil)
			} else {
				vertex.Fresh()
				vertex.Complete(nil)
			}
			mu.Lock()
			decisions[i] = d
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}
	return &Report{Decisions: decisions}, nil
}

// record persists the current state as the next build's baseline, using
// the same fingerprints the checker compared against.
func (a *App) record(site *domain.Site, batch *domain.ChecksumBatch, store ports.StateStore, deps *outdated.DependencyStore) error {
	for _, key := range batch.Keys() {
		if sum, ok := batch.Get(key); ok {
			store.Record(key, sum)
		}
	}

	for _, item := range site.Items.All() {
		for _, rep := range item.Reps {
			serialized, err := rep.Sequence.Serialize()
			if err != nil {
				return err
			}
			store.RecordSequence(rep.Reference(), serialized)
			store.MarkWritten(rep.Reference())
		}
	}
	for _, layout := range site.Layouts.All() {
		serialized, err := layout.Sequence.Serialize()
		if err != nil {
			return err
		}
		store.RecordSequence(layout.Reference(), serialized)
	}

	store.SetGraph(deps.Store())
	return store.Save()
}
