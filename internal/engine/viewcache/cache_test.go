package viewcache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starview/internal/adapters/events"
	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports/mocks"
	"go.trai.ch/starview/internal/engine/phase"
	"go.trai.ch/starview/internal/engine/view"
	"go.trai.ch/starview/internal/engine/viewcache"
	"go.uber.org/mock/gomock"
)

func series(times ...float64) []domain.Observation {
	obs := make([]domain.Observation, len(times))
	for i, t := range times {
		obs[i] = domain.Observation{Time: t, Magnitude: 8 + float64(i)/10, Uncertainty: 0.01}
	}
	return obs
}

func newModel(ctrl *gomock.Controller, desc string) *mocks.MockModel {
	m := mocks.NewMockModel(ctrl)
	m.EXPECT().Description().Return(desc).AnyTimes()
	m.EXPECT().Fit().Return(series(10, 15, 20)).AnyTimes()
	m.EXPECT().Residuals().Return(series(11, 16)).AnyTimes()
	m.EXPECT().Summary().Return(desc + " summary").AnyTimes()
	return m
}

func newRealCache() *viewcache.Cache {
	return viewcache.New(phase.NewAssigner(), view.NewBuilder(), nil)
}

func TestCache_ModelView_Raw_BuildsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	assigner := mocks.NewMockPhaseAssigner(ctrl)
	builder := mocks.NewMockViewBuilder(ctrl)
	model := newModel(ctrl, "Polynomial fit (degree 2)")

	built := &domain.DerivedView{Role: domain.RoleModel, Projection: domain.ProjectionRaw}
	builder.EXPECT().
		Build(series(10, 15, 20), domain.RoleModel, domain.ProjectionRaw, "Polynomial fit (degree 2) summary").
		Return(built).
		Times(1)

	cache := viewcache.New(assigner, builder, nil)

	first, err := cache.ModelView(domain.ProjectionRaw, model)
	require.NoError(t, err)
	second, err := cache.ModelView(domain.ProjectionRaw, model)
	require.NoError(t, err)

	assert.Same(t, built, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_ResidualView_Raw_UsesResiduals(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := mocks.NewMockViewBuilder(ctrl)
	model := newModel(ctrl, "fit")

	builder.EXPECT().
		Build(series(11, 16), domain.RoleResiduals, domain.ProjectionRaw, "fit summary").
		Return(&domain.DerivedView{Role: domain.RoleResiduals}).
		Times(1)

	cache := viewcache.New(mocks.NewMockPhaseAssigner(ctrl), builder, nil)

	v, err := cache.ResidualView(domain.ProjectionRaw, model)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleResiduals, v.Role)
}

func TestCache_RolesAreSeparate(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "shared description")
	cache := newRealCache()

	modelView, err := cache.ModelView(domain.ProjectionRaw, model)
	require.NoError(t, err)
	residualView, err := cache.ResidualView(domain.ProjectionRaw, model)
	require.NoError(t, err)

	assert.NotSame(t, modelView, residualView)
	assert.Equal(t, domain.RoleModel, modelView.Role)
	assert.Equal(t, domain.RoleResiduals, residualView.Role)
	assert.Equal(t, 3, modelView.Len())
	assert.Equal(t, 2, residualView.Len())
	assert.Equal(t, 2, cache.Len())
}

func TestCache_PhaseFolded_KeyedByPhaseContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	cache.OnPhaseChanged(5, 10)
	first, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)
	again, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.InDelta(t, 5.0, first.Epoch, 0)
	assert.InDelta(t, 10.0, first.Period, 0)

	cache.OnPhaseChanged(5, 20)
	changed, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)
	assert.NotSame(t, first, changed)
	assert.InDelta(t, 20.0, changed.Period, 0)

	wantPhases := []float64{0.25, 0.5, 0.75}
	for i, row := range changed.Rows {
		assert.InDelta(t, wantPhases[i], row.Phase, 1e-9)
	}

	// The entry for the first context lingers until ClearAll.
	assert.Equal(t, 2, cache.Len())
}

func TestCache_PhaseFolded_KeysAreExact(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	cache.OnPhaseChanged(5, 10.0000001)
	first, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)

	cache.OnPhaseChanged(5, 10.0000002)
	second, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 10.0000002, second.Period)
	assert.Equal(t, 2, cache.Len())

	cache.OnPhaseChanged(5.00000001, 10.0000002)
	third, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)

	assert.NotSame(t, second, third)
	assert.Equal(t, 3, cache.Len())
}

func TestCache_PhaseFolded_UnrepresentablePhaseIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	cache.OnPhaseChanged(0, 1e-310)

	v, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Nil(t, v)
	assert.Zero(t, cache.Len())
}

func TestCache_PhaseFolded_DoesNotTouchRawSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	raw, err := cache.ModelView(domain.ProjectionRaw, model)
	require.NoError(t, err)

	cache.OnPhaseChanged(0, 3)
	_, err = cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)

	for _, row := range raw.Rows {
		assert.Zero(t, row.Phase)
	}
	for _, obs := range model.Fit() {
		assert.False(t, obs.Phased)
	}
}

func TestCache_ClearAll_ForcesRebuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := mocks.NewMockViewBuilder(ctrl)
	model := newModel(ctrl, "fit")

	roles := []domain.SeriesRole{domain.RoleModel, domain.RoleResiduals}
	projections := []domain.Projection{domain.ProjectionRaw, domain.ProjectionPhaseFolded}

	for _, role := range roles {
		for _, p := range projections {
			builder.EXPECT().
				Build(gomock.Any(), role, p, gomock.Any()).
				DoAndReturn(func(_ []domain.Observation, role domain.SeriesRole, p domain.Projection, _ string) *domain.DerivedView {
					return &domain.DerivedView{Role: role, Projection: p}
				}).
				Times(2)
		}
	}

	cache := viewcache.New(phase.NewAssigner(), builder, nil)
	cache.OnPhaseChanged(0, 7)

	lookup := func(role domain.SeriesRole, p domain.Projection) *domain.DerivedView {
		t.Helper()
		var (
			v   *domain.DerivedView
			err error
		)
		if role == domain.RoleModel {
			v, err = cache.ModelView(p, model)
		} else {
			v, err = cache.ResidualView(p, model)
		}
		require.NoError(t, err)
		return v
	}

	before := make(map[[2]int]*domain.DerivedView)
	for _, role := range roles {
		for _, p := range projections {
			before[[2]int{int(role), int(p)}] = lookup(role, p)
		}
	}
	require.Equal(t, 4, cache.Len())

	cache.ClearAll()
	assert.Zero(t, cache.Len())

	for _, role := range roles {
		for _, p := range projections {
			after := lookup(role, p)
			assert.NotSame(t, before[[2]int{int(role), int(p)}], after, "%s %s", role, p)
		}
	}
	assert.Equal(t, 4, cache.Len())
}

func TestCache_ClearAll_EmptiesEveryMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()
	cache.OnPhaseChanged(0, 7)

	for _, p := range []domain.Projection{domain.ProjectionRaw, domain.ProjectionPhaseFolded} {
		_, err := cache.ModelView(p, model)
		require.NoError(t, err)
		_, err = cache.ResidualView(p, model)
		require.NoError(t, err)
	}
	require.Equal(t, 4, cache.Len())

	cache.ClearAll()
	assert.Zero(t, cache.Len())
	assert.True(t, cache.PhasePlotExists(), "clearing views keeps the phase context")
}

func TestCache_PhaseFolded_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	cache.OnPhaseChanged(0, 0)

	v, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Nil(t, v)
	assert.Zero(t, cache.Len(), "failed builds are not cached")
}

func TestCache_PhaseFolded_WithoutPhaseContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	require.False(t, cache.PhasePlotExists())
	_, err := cache.ResidualView(domain.ProjectionPhaseFolded, model)
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestCache_NilModel(t *testing.T) {
	cache := newRealCache()

	_, err := cache.ModelView(domain.ProjectionRaw, nil)
	require.ErrorIs(t, err, domain.ErrMissingDependency)

	_, err = cache.ResidualView(domain.ProjectionPhaseFolded, nil)
	require.ErrorIs(t, err, domain.ErrMissingDependency)
}

func TestCache_UnknownProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	_, err := cache.ModelView(domain.Projection(42), model)
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestCache_EmptySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockModel(ctrl)
	model.EXPECT().Description().Return("empty").AnyTimes()
	model.EXPECT().Fit().Return(nil).AnyTimes()
	model.EXPECT().Summary().Return("").AnyTimes()

	cache := newRealCache()
	cache.OnPhaseChanged(0, 1)

	for _, p := range []domain.Projection{domain.ProjectionRaw, domain.ProjectionPhaseFolded} {
		v, err := cache.ModelView(p, model)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Zero(t, v.Len())
	}
}

func TestCache_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	metrics := mocks.NewMockViewMetrics(ctrl)

	gomock.InOrder(
		metrics.EXPECT().ObserveMiss(domain.RoleModel, domain.ProjectionRaw),
		metrics.EXPECT().ObserveHit(domain.RoleModel, domain.ProjectionRaw),
		metrics.EXPECT().ObserveClear(1),
	)

	cache := viewcache.New(phase.NewAssigner(), view.NewBuilder(), metrics)

	_, err := cache.ModelView(domain.ProjectionRaw, model)
	require.NoError(t, err)
	_, err = cache.ModelView(domain.ProjectionRaw, model)
	require.NoError(t, err)
	cache.ClearAll()
}

func TestCache_ConcurrentRequestsBuildOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := mocks.NewMockViewBuilder(ctrl)
	model := newModel(ctrl, "fit")

	built := &domain.DerivedView{}
	builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(built).Times(1)

	cache := viewcache.New(mocks.NewMockPhaseAssigner(ctrl), builder, nil)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.ModelView(domain.ProjectionRaw, model)
			assert.NoError(t, err)
			assert.Same(t, built, v)
		}()
	}
	wg.Wait()
}

func TestCache_Listeners(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := newModel(ctrl, "fit")
	cache := newRealCache()

	bus := events.NewBus()
	bus.NewDataset.AddListener(cache.NewDatasetListener())
	bus.PhaseChange.AddListener(cache.PhaseChangeListener())

	bus.PhaseChange.Notify(domain.PhaseChangeMessage{Epoch: 2, Period: 4})
	assert.True(t, cache.PhasePlotExists())
	assert.InDelta(t, 2.0, cache.Epoch(), 0)
	assert.InDelta(t, 4.0, cache.Period(), 0)

	_, err := cache.ModelView(domain.ProjectionPhaseFolded, model)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	bus.NewDataset.Notify(domain.NewDatasetMessage{Star: "R Car"})
	assert.Zero(t, cache.Len())
}
