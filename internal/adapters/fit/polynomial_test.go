package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starview/internal/adapters/fit"
	"go.trai.ch/starview/internal/core/domain"
)

func quadratic(times ...float64) []domain.Observation {
	obs := make([]domain.Observation, len(times))
	for i, t := range times {
		obs[i] = domain.Observation{
			Time:        t,
			Magnitude:   2 + 0.5*t - 0.25*t*t,
			Uncertainty: 0.01,
			Band:        "V",
		}
	}
	return obs
}

func TestPolynomialFitter_ExactQuadratic(t *testing.T) {
	obs := quadratic(0, 1, 2, 3, 4, 5)

	model, err := fit.NewPolynomialFitter().Fit(obs, domain.ModelSpec{Kind: domain.ModelPolynomial, Degree: 2})
	require.NoError(t, err)

	assert.Equal(t, "Polynomial fit (degree 2)", model.Description())
	require.Len(t, model.Fit(), len(obs))
	require.Len(t, model.Residuals(), len(obs))

	for i, o := range obs {
		assert.InDelta(t, o.Magnitude, model.Fit()[i].Magnitude, 1e-9)
		assert.InDelta(t, o.Time, model.Fit()[i].Time, 0)
		assert.InDelta(t, 0, model.Residuals()[i].Magnitude, 1e-9)
		assert.InDelta(t, o.Uncertainty, model.Residuals()[i].Uncertainty, 0)
		assert.Equal(t, "V", model.Residuals()[i].Band)
	}

	assert.Contains(t, model.Summary(), "Polynomial fit (degree 2)")
	assert.Contains(t, model.Summary(), "RMS = ")
}

func TestPolynomialFitter_ConstantIsMean(t *testing.T) {
	obs := []domain.Observation{
		{Time: 10, Magnitude: 7},
		{Time: 20, Magnitude: 8},
		{Time: 30, Magnitude: 9},
	}

	model, err := fit.NewPolynomialFitter().Fit(obs, domain.ModelSpec{Kind: domain.ModelPolynomial, Degree: 0})
	require.NoError(t, err)

	for _, f := range model.Fit() {
		assert.InDelta(t, 8.0, f.Magnitude, 1e-9)
	}
	assert.InDelta(t, -1.0, model.Residuals()[0].Magnitude, 1e-9)
	assert.InDelta(t, 1.0, model.Residuals()[2].Magnitude, 1e-9)
}

func TestPolynomialFitter_LargeJulianDates(t *testing.T) {
	obs := make([]domain.Observation, 0, 50)
	for i := range 50 {
		tt := 2450000.0 + float64(i)*3.7
		obs = append(obs, domain.Observation{Time: tt, Magnitude: 7 + 0.001*(tt-2450000)})
	}

	model, err := fit.NewPolynomialFitter().Fit(obs, domain.ModelSpec{Kind: domain.ModelPolynomial, Degree: 3})
	require.NoError(t, err)

	for _, r := range model.Residuals() {
		assert.InDelta(t, 0, r.Magnitude, 1e-6)
	}
}

func TestPolynomialFitter_DoesNotModifyInput(t *testing.T) {
	obs := quadratic(0, 1, 2, 3)
	before := append([]domain.Observation(nil), obs...)

	_, err := fit.NewPolynomialFitter().Fit(obs, domain.ModelSpec{Kind: domain.ModelPolynomial, Degree: 1})
	require.NoError(t, err)
	assert.Equal(t, before, obs)
}

func TestPolynomialFitter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		obs     []domain.Observation
		spec    domain.ModelSpec
		wantErr error
	}{
		{
			name:    "too few observations",
			obs:     quadratic(0, 1),
			spec:    domain.ModelSpec{Kind: domain.ModelPolynomial, Degree: 2},
			wantErr: domain.ErrFitFailed,
		},
		{
			name:    "no observations",
			obs:     nil,
			spec:    domain.ModelSpec{Kind: domain.ModelPolynomial, Degree: 0},
			wantErr: domain.ErrFitFailed,
		},
		{
			name:    "unknown kind",
			obs:     quadratic(0, 1, 2),
			spec:    domain.ModelSpec{Kind: "spline", Degree: 1},
			wantErr: domain.ErrUnknownModelKind,
		},
		{
			name:    "degree out of range",
			obs:     quadratic(0, 1, 2),
			spec:    domain.ModelSpec{Kind: domain.ModelPolynomial, Degree: domain.MaxPolynomialDegree + 1},
			wantErr: domain.ErrInvalidModelSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fit.NewPolynomialFitter().Fit(tt.obs, tt.spec)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Polynomial fit (degree 5)", fit.Description(5))
}
