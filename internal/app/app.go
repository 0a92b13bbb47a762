// Package app implements the application layer for starview.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/starview/internal/adapters/events"  //nolint:depguard // Wired in app layer
	"go.trai.ch/starview/internal/adapters/watcher" //nolint:depguard // Debouncer is used directly
	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/starview/internal/engine/ledger"
	"go.trai.ch/starview/internal/engine/viewcache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App loads sessions and presents their derived views.
type App struct {
	loader         ports.SessionLoader
	fitter         ports.ModelFitter
	binner         ports.Binner
	cache          *viewcache.Cache
	ledger         *ledger.Ledger
	bus            *events.Bus
	renderer       ports.Renderer
	logger         ports.Logger
	tracer         ports.Tracer
	watcher        ports.Watcher
	metrics        http.Handler
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.SessionLoader,
	fitter ports.ModelFitter,
	binner ports.Binner,
	cache *viewcache.Cache,
	stats *ledger.Ledger,
	bus *events.Bus,
	renderer ports.Renderer,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:         loader,
		fitter:         fitter,
		binner:         binner,
		cache:          cache,
		ledger:         stats,
		bus:            bus,
		renderer:       renderer,
		logger:         log,
		tracer:         tracer,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithWatcher sets the file watcher used by Watch.
func (a *App) WithWatcher(w ports.Watcher) *App {
	a.watcher = w
	return a
}

// WithMetricsHandler sets the handler served on /metrics when Watch is given an address.
func (a *App) WithMetricsHandler(h http.Handler) *App {
	a.metrics = h
	return a
}

// WithDebounceWindow sets how long Watch waits for writes to settle before reloading.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// ShowOptions configures Show and each reload of Watch.
type ShowOptions struct {
	Projection domain.Projection
	// Epoch and Period override the session's phase block when set.
	Epoch  *float64
	Period *float64
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
	// TraceSpans logs every finished span.
	TraceSpans bool
	// HideErrorBars and InvertTime set the plot toggles before rendering.
	HideErrorBars bool
	InvertTime    bool
}

// WatchOptions configures Watch.
type WatchOptions struct {
	ShowOptions
	// MetricsAddr serves Prometheus metrics when non-empty.
	MetricsAddr string
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

type spanLogSwitch interface {
	SetSpanLogging(enabled bool)
}

func (a *App) configure(opts ShowOptions) {
	if s, ok := a.logger.(jsonSwitch); ok {
		s.SetJSON(opts.JSONLogs)
	}
	if s, ok := a.tracer.(spanLogSwitch); ok {
		s.SetSpanLogging(opts.TraceSpans)
	}
	a.setToggle(domain.ToggleErrorBars, !opts.HideErrorBars)
	a.setToggle(domain.ToggleDomainAxisInversion, opts.InvertTime)
}

func (a *App) setToggle(t domain.PlotToggle, on bool) {
	if a.cache.Enabled(t) != on {
		a.cache.Toggle(t)
	}
}

// Show loads the session at path once and renders it.
func (a *App) Show(ctx context.Context, path string, opts ShowOptions) error {
	a.configure(opts)

	ctx, span := a.tracer.Start(ctx, "show")
	defer span.End()

	session, err := a.load(ctx, path)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := a.present(ctx, session, opts); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) load(ctx context.Context, path string) (*domain.Session, error) {
	_, span := a.tracer.Start(ctx, "load")
	defer span.End()
	span.SetAttribute("path", path)

	session, err := a.loader.Load(path)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load session")
	}

	span.SetAttribute("observations", len(session.Dataset.Observations))
	span.SetAttribute("fingerprint", session.Fingerprint)
	return session, nil
}

// present publishes the session's lifecycle events and renders every model.
func (a *App) present(ctx context.Context, session *domain.Session, opts ShowOptions) error {
	ds := &session.Dataset
	a.bus.NewDataset.Notify(domain.NewDatasetMessage{
		Star:        ds.Star,
		Fingerprint: ds.Fingerprint,
		Count:       len(ds.Observations),
	})

	if phase := phaseContext(session.Phase, opts); phase != nil {
		a.bus.PhaseChange.Notify(*phase)
	}

	if err := a.renderer.Dataset(ds); err != nil {
		return err
	}

	renderOpts := domain.RenderOptions{
		ErrorBars:    a.cache.Enabled(domain.ToggleErrorBars),
		InvertDomain: a.cache.Enabled(domain.ToggleDomainAxisInversion),
	}

	for _, spec := range session.Models {
		model, err := a.fit(ctx, ds.Observations, spec)
		if err != nil {
			return err
		}

		for _, role := range []domain.SeriesRole{domain.RoleModel, domain.RoleResiduals} {
			v, err := a.view(ctx, role, opts.Projection, model)
			if err != nil {
				return err
			}
			if err := a.renderer.View(v, renderOpts); err != nil {
				return err
			}
		}
	}

	if session.Binning != nil {
		if err := a.bin(ctx, ds, session.Binning.Size); err != nil {
			return err
		}
	}

	return a.renderer.Ledger(a.ledger.Entries())
}

// phaseContext merges flag overrides into the session's phase block.
// It returns nil when neither defines one.
func phaseContext(fromFile *domain.PhaseChangeMessage, opts ShowOptions) *domain.PhaseChangeMessage {
	if fromFile == nil && opts.Epoch == nil && opts.Period == nil {
		return nil
	}

	var phase domain.PhaseChangeMessage
	if fromFile != nil {
		phase = *fromFile
	}
	if opts.Epoch != nil {
		phase.Epoch = *opts.Epoch
	}
	if opts.Period != nil {
		phase.Period = *opts.Period
	}
	return &phase
}

func (a *App) fit(ctx context.Context, obs []domain.Observation, spec domain.ModelSpec) (ports.Model, error) {
	_, span := a.tracer.Start(ctx, "fit")
	defer span.End()
	span.SetAttribute("kind", string(spec.Kind))
	span.SetAttribute("degree", spec.Degree)

	model, err := a.fitter.Fit(obs, spec)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return model, nil
}

func (a *App) view(
	ctx context.Context,
	role domain.SeriesRole,
	projection domain.Projection,
	model ports.Model,
) (*domain.DerivedView, error) {
	_, span := a.tracer.Start(ctx, "view")
	defer span.End()
	span.SetAttribute("role", role.String())
	span.SetAttribute("projection", projection.String())
	span.SetAttribute("model", model.Description())

	var (
		v   *domain.DerivedView
		err error
	)
	if role == domain.RoleModel {
		v, err = a.cache.ModelView(projection, model)
	} else {
		v, err = a.cache.ResidualView(projection, model)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return v, nil
}

func (a *App) bin(ctx context.Context, ds *domain.Dataset, size float64) error {
	_, span := a.tracer.Start(ctx, "bin")
	defer span.End()
	span.SetAttribute("size", size)

	name := seriesName(ds)
	if name == "" {
		name = a.cache.NextUntitledFilterName()
	}
	span.SetAttribute("series", name)

	result, err := a.binner.Bin(name, ds.Observations, size)
	if err != nil {
		span.RecordError(err)
		return err
	}

	a.bus.Binning.Notify(result)
	return nil
}

// seriesName describes the observations by their bands.
// It is empty when no observation carries a band.
func seriesName(ds *domain.Dataset) string {
	var bands []string
	for _, obs := range ds.Observations {
		if obs.Band != "" && !slices.Contains(bands, obs.Band) {
			bands = append(bands, obs.Band)
		}
	}
	return strings.Join(bands, ", ")
}

// Watch shows the session at path, then shows it again whenever the file changes
// until ctx is done. Reloads with an unchanged fingerprint are skipped.
//
//nolint:cyclop // orchestration function
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	if a.watcher == nil {
		return zerr.With(domain.ErrWatcherFailed, "reason", "no watcher configured")
	}
	a.configure(opts.ShowOptions)

	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}

	var last uint64
	reload := func(ctx context.Context) {
		ctx, span := a.tracer.Start(ctx, "reload")
		defer span.End()

		session, err := a.load(ctx, target)
		if err != nil {
			span.RecordError(err)
			a.logger.Error(err)
			return
		}
		if last != 0 && session.Fingerprint == last {
			a.logger.Info(fmt.Sprintf("%s unchanged, skipping reload", filepath.Base(target)))
			return
		}
		if err := a.present(ctx, session, opts.ShowOptions); err != nil {
			span.RecordError(err)
			a.logger.Error(err)
		}
		last = session.Fingerprint
	}

	g, ctx := errgroup.WithContext(ctx)

	// Events end once ctx is done.
	if err := a.watcher.Start(ctx, filepath.Dir(target)); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	if opts.MetricsAddr != "" {
		a.serveMetrics(ctx, g, opts.MetricsAddr)
	}

	reloads := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func([]string) {
		select {
		case reloads <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if event.Path == target && event.Operation != ports.OpRemove {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		reload(ctx)
		a.logger.Info("watching " + target)
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-reloads:
				reload(ctx)
			}
		}
	})

	return g.Wait()
}

func (a *App) serveMetrics(ctx context.Context, g *errgroup.Group, addr string) {
	mux := http.NewServeMux()
	if a.metrics != nil {
		mux.Handle("/metrics", a.metrics)
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, domain.ErrMetricsServerFailed.Error()), "addr", addr)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
