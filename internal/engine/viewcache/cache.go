// Package viewcache caches derived model and residual views per analysis projection.
package viewcache

import (
	"sync"

	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/zerr"
)

// phasedKey identifies a phase-folded view. Epoch and period are compared exactly,
// so views built under an earlier phase context are never looked up again.
type phasedKey struct {
	description string
	epoch       float64
	period      float64
}

// views holds the cached views of one series role.
type views struct {
	raw    map[string]*domain.DerivedView
	phased map[phasedKey]*domain.DerivedView
}

func newViews() views {
	return views{
		raw:    make(map[string]*domain.DerivedView),
		phased: make(map[phasedKey]*domain.DerivedView),
	}
}

func (v views) len() int {
	return len(v.raw) + len(v.phased)
}

// Cache builds derived views on demand and keeps them until the next dataset is loaded.
//
// Entries are only ever dropped by ClearAll. Phase-folded entries built under an older
// phase context stay in memory, unreachable, until then. Model count is small and user
// driven, so growth is bounded by the number of models times the phase changes seen for
// one dataset.
//
// All methods are safe for concurrent use; one mutex guards the maps, the phase context
// and the plot toggles.
type Cache struct {
	mu        sync.Mutex
	assigner  ports.PhaseAssigner
	builder   ports.ViewBuilder
	metrics   ports.ViewMetrics
	models    views
	residuals views
	phase     domain.PhaseParameters
	toggles   [domain.NumPlotToggles]bool
	filters   *FilterCounter
}

// New creates an empty Cache. A nil metrics discards cache events.
func New(assigner ports.PhaseAssigner, builder ports.ViewBuilder, metrics ports.ViewMetrics) *Cache {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Cache{
		assigner:  assigner,
		builder:   builder,
		metrics:   metrics,
		models:    newViews(),
		residuals: newViews(),
		toggles:   defaultToggles(),
		filters:   NewFilterCounter(),
	}
}

// ModelView returns the view of the model's fit in the given projection.
func (c *Cache) ModelView(projection domain.Projection, model ports.Model) (*domain.DerivedView, error) {
	return c.view(domain.RoleModel, projection, model)
}

// ResidualView returns the view of the model's residuals in the given projection.
func (c *Cache) ResidualView(projection domain.Projection, model ports.Model) (*domain.DerivedView, error) {
	return c.view(domain.RoleResiduals, projection, model)
}

func (c *Cache) view(role domain.SeriesRole, projection domain.Projection, model ports.Model) (*domain.DerivedView, error) {
	if model == nil {
		return nil, zerr.With(domain.ErrMissingDependency, "role", role.String())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	store := c.residuals
	if role == domain.RoleModel {
		store = c.models
	}

	switch projection {
	case domain.ProjectionRaw:
		return c.rawView(store, role, model), nil
	case domain.ProjectionPhaseFolded:
		return c.phasedView(store, role, model)
	default:
		return nil, zerr.With(domain.ErrInvalidParameter, "projection", projection.String())
	}
}

func (c *Cache) rawView(store views, role domain.SeriesRole, model ports.Model) *domain.DerivedView {
	key := model.Description()
	if v, ok := store.raw[key]; ok {
		c.metrics.ObserveHit(role, domain.ProjectionRaw)
		return v
	}
	c.metrics.ObserveMiss(role, domain.ProjectionRaw)

	v := c.builder.Build(series(model, role), role, domain.ProjectionRaw, model.Summary())
	store.raw[key] = v
	return v
}

func (c *Cache) phasedView(store views, role domain.SeriesRole, model ports.Model) (*domain.DerivedView, error) {
	epoch, period := c.phase.Epoch, c.phase.Period
	key := phasedKey{description: model.Description(), epoch: epoch, period: period}
	if v, ok := store.phased[key]; ok {
		c.metrics.ObserveHit(role, domain.ProjectionPhaseFolded)
		return v, nil
	}

	points, err := c.assigner.Assign(series(model, role), epoch, period)
	if err != nil {
		return nil, zerr.With(err, "model", key.description)
	}
	c.metrics.ObserveMiss(role, domain.ProjectionPhaseFolded)

	v := c.builder.Build(points, role, domain.ProjectionPhaseFolded, model.Summary())
	v.Epoch, v.Period = epoch, period
	store.phased[key] = v
	return v, nil
}

func series(model ports.Model, role domain.SeriesRole) []domain.Observation {
	if role == domain.RoleModel {
		return model.Fit()
	}
	return model.Residuals()
}

// ClearAll drops every cached view. It runs when a new dataset is loaded.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.models.len() + c.residuals.len()
	c.models = newViews()
	c.residuals = newViews()
	c.metrics.ObserveClear(n)
}

// OnPhaseChanged makes (epoch, period) the current phase context.
// Cached phase-folded views are kept; they are keyed by the context they were built with.
func (c *Cache) OnPhaseChanged(epoch, period float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = domain.PhaseParameters{Epoch: epoch, Period: period, Exists: true}
}

// PhaseParameters returns the current phase context.
func (c *Cache) PhaseParameters() domain.PhaseParameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// PhasePlotExists reports whether a phase context has been set.
func (c *Cache) PhasePlotExists() bool {
	return c.PhaseParameters().Exists
}

// Epoch returns the current phase epoch.
func (c *Cache) Epoch() float64 {
	return c.PhaseParameters().Epoch
}

// Period returns the current phase period.
func (c *Cache) Period() float64 {
	return c.PhaseParameters().Period
}

// Len returns the number of cached views, reachable or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.models.len() + c.residuals.len()
}

// NewDatasetListener returns the listener that clears the cache on a dataset load.
func (c *Cache) NewDatasetListener() func(domain.NewDatasetMessage) {
	return func(domain.NewDatasetMessage) {
		c.ClearAll()
	}
}

// PhaseChangeListener returns the listener that tracks the current phase context.
func (c *Cache) PhaseChangeListener() func(domain.PhaseChangeMessage) {
	return func(msg domain.PhaseChangeMessage) {
		c.OnPhaseChanged(msg.Epoch, msg.Period)
	}
}

type noopMetrics struct{}

func (noopMetrics) ObserveHit(domain.SeriesRole, domain.Projection)  {}
func (noopMetrics) ObserveMiss(domain.SeriesRole, domain.Projection) {}
func (noopMetrics) ObserveClear(int)                                 {}
