// Package fit fits models to observations with least squares.
package fit

import (
	"fmt"
	"math"
	"strings"

	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var _ ports.ModelFitter = (*PolynomialFitter)(nil)

// PolynomialFitter implements ports.ModelFitter for polynomial models in time.
type PolynomialFitter struct{}

// NewPolynomialFitter creates a new PolynomialFitter.
func NewPolynomialFitter() *PolynomialFitter {
	return &PolynomialFitter{}
}

// Fit fits magnitude as a polynomial of time. Time is centred on its mean and scaled
// to [-1, 1] before fitting to keep the design matrix well conditioned.
func (f *PolynomialFitter) Fit(obs []domain.Observation, spec domain.ModelSpec) (ports.Model, error) {
	if spec.Kind != domain.ModelPolynomial {
		return nil, zerr.With(domain.ErrUnknownModelKind, "kind", string(spec.Kind))
	}
	if spec.Degree < 0 || spec.Degree > domain.MaxPolynomialDegree {
		return nil, zerr.With(domain.ErrInvalidModelSpec, "degree", spec.Degree)
	}
	if len(obs) <= spec.Degree {
		err := zerr.With(domain.ErrFitFailed, "degree", spec.Degree)
		return nil, zerr.With(err, "observations", len(obs))
	}

	times := make([]float64, len(obs))
	mags := make([]float64, len(obs))
	for i, o := range obs {
		times[i] = o.Time
		mags[i] = o.Magnitude
	}

	center := stat.Mean(times, nil)
	scale := 0.0
	for _, t := range times {
		scale = math.Max(scale, math.Abs(t-center))
	}
	if scale == 0 {
		scale = 1
	}

	cols := spec.Degree + 1
	design := mat.NewDense(len(obs), cols, nil)
	for i, t := range times {
		u := (t - center) / scale
		p := 1.0
		for j := range cols {
			design.Set(i, j, p)
			p *= u
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, mat.NewVecDense(len(mags), mags)); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrFitFailed, "reason", err.Error()), "degree", spec.Degree)
	}

	coefficients := make([]float64, cols)
	for j := range coefficients {
		c := coef.AtVec(j)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, zerr.With(domain.ErrFitFailed, "degree", spec.Degree)
		}
		coefficients[j] = c
	}

	m := &polynomialModel{
		description: Description(spec.Degree),
		fit:         make([]domain.Observation, len(obs)),
		residuals:   make([]domain.Observation, len(obs)),
	}

	var sumSq float64
	for i, o := range obs {
		value := evaluate(coefficients, (o.Time-center)/scale)

		fitted := o
		fitted.Magnitude = value
		fitted.Uncertainty = 0
		m.fit[i] = fitted

		residual := o
		residual.Magnitude = o.Magnitude - value
		m.residuals[i] = residual

		sumSq += residual.Magnitude * residual.Magnitude
	}

	m.summary = summarize(m.description, coefficients, center, scale, math.Sqrt(sumSq/float64(len(obs))))
	return m, nil
}

// Description returns the description of a polynomial model of the given degree.
func Description(degree int) string {
	return fmt.Sprintf("Polynomial fit (degree %d)", degree)
}

// evaluate computes the polynomial at u with Horner's method.
func evaluate(coefficients []float64, u float64) float64 {
	v := 0.0
	for j := len(coefficients) - 1; j >= 0; j-- {
		v = v*u + coefficients[j]
	}
	return v
}

func summarize(description string, coefficients []float64, center, scale, rms float64) string {
	var b strings.Builder
	b.WriteString(description)
	fmt.Fprintf(&b, "\nu = (t - %.6f) / %.6f", center, scale)
	for j, c := range coefficients {
		fmt.Fprintf(&b, "\nc%d = %.6g", j, c)
	}
	fmt.Fprintf(&b, "\nRMS = %.6g", rms)
	return b.String()
}

type polynomialModel struct {
	description string
	fit         []domain.Observation
	residuals   []domain.Observation
	summary     string
}

func (m *polynomialModel) Description() string { return m.description }
func (m *polynomialModel) Fit() []domain.Observation { return m.fit }
func (m *polynomialModel) Residuals() []domain.Observation { return m.residuals }
func (m *polynomialModel) Summary() string { return m.summary }
