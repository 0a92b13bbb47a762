package domain

import "fmt"

// AnovaResult holds a one-way analysis of variance across bins.
type AnovaResult struct {
	Valid bool
	// NoVariance is set when every value is identical, so F is undefined.
	NoVariance bool
	FValue     float64
	PValue     float64
	BetweenDF  int
	WithinDF   int
}

// Text returns the ANOVA summary for display.
func (a AnovaResult) Text() string {
	if a.NoVariance {
		return "ANOVA: no variation in the data"
	}
	if !a.Valid {
		return "ANOVA: insufficient data"
	}
	return fmt.Sprintf("F-value: %.4f on %d and %d degrees of freedom, p-value: %.6g",
		a.FValue, a.BetweenDF, a.WithinDF, a.PValue)
}

// BinningResult is the output of binning a series into mean observations.
type BinningResult struct {
	// Series describes the source series of the means.
	Series string
	Means  []Observation
	Anova  AnovaResult
}
