// Package binning averages observations over fixed time bins and tests the bins for
// differences with a one-way analysis of variance.
package binning

import (
	"math"
	"slices"

	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var _ ports.Binner = (*TimeBinner)(nil)

const maxBinIndex = math.MaxInt32

// TimeBinner implements ports.Binner with consecutive bins of equal width.
type TimeBinner struct{}

// NewTimeBinner creates a new TimeBinner.
func NewTimeBinner() *TimeBinner {
	return &TimeBinner{}
}

type bin struct {
	index  int
	values []float64
	first  domain.Observation
}

// Bin groups obs into bins of size days starting at the earliest observation.
// Each mean observation sits at its bin centre with the standard error as uncertainty.
func (b *TimeBinner) Bin(series string, obs []domain.Observation, size float64) (domain.BinningResult, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return domain.BinningResult{}, zerr.With(domain.ErrInvalidBinning, "size", size)
	}
	if len(obs) == 0 {
		return domain.BinningResult{}, zerr.With(domain.ErrInsufficientData, "series", series)
	}

	start, end := obs[0].Time, obs[0].Time
	for _, o := range obs[1:] {
		start = math.Min(start, o.Time)
		end = math.Max(end, o.Time)
	}

	// Bin indices must fit an int exactly.
	if last := (end - start) / size; math.IsNaN(last) || last > maxBinIndex {
		err := zerr.With(domain.ErrInvalidBinning, "size", size)
		return domain.BinningResult{}, zerr.With(err, "span", end-start)
	}

	byIndex := make(map[int]*bin)
	for _, o := range obs {
		idx := int(math.Floor((o.Time - start) / size))
		bn, ok := byIndex[idx]
		if !ok {
			bn = &bin{index: idx, first: o}
			byIndex[idx] = bn
		}
		bn.values = append(bn.values, o.Magnitude)
	}

	bins := make([]*bin, 0, len(byIndex))
	for _, bn := range byIndex {
		bins = append(bins, bn)
	}
	slices.SortFunc(bins, func(x, y *bin) int { return x.index - y.index })

	means := make([]domain.Observation, len(bins))
	groups := make([][]float64, len(bins))
	for i, bn := range bins {
		mean, std := stat.MeanStdDev(bn.values, nil)
		stderr := 0.0
		if n := len(bn.values); n > 1 {
			stderr = std / math.Sqrt(float64(n))
		}
		means[i] = domain.Observation{
			Time:        start + (float64(bn.index)+0.5)*size,
			Magnitude:   mean,
			Uncertainty: stderr,
			Band:        bn.first.Band,
			TimeSystem:  bn.first.TimeSystem,
		}
		groups[i] = bn.values
	}

	return domain.BinningResult{
		Series: series,
		Means:  means,
		Anova:  OneWayAnova(groups),
	}, nil
}

// OneWayAnova tests whether the group means differ.
// It needs at least two groups and more values than groups.
func OneWayAnova(groups [][]float64) domain.AnovaResult {
	k := len(groups)
	n := 0
	grandSum := 0.0
	for _, g := range groups {
		n += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	if k < 2 || n <= k {
		return domain.AnovaResult{}
	}
	grand := grandSum / float64(n)

	var ssb, ssw float64
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		mean := stat.Mean(g, nil)
		ssb += float64(len(g)) * (mean - grand) * (mean - grand)
		for _, v := range g {
			ssw += (v - mean) * (v - mean)
		}
	}

	dfB, dfW := k-1, n-k
	res := domain.AnovaResult{Valid: true, BetweenDF: dfB, WithinDF: dfW}

	msb := ssb / float64(dfB)
	msw := ssw / float64(dfW)
	if msb == 0 && msw == 0 {
		return domain.AnovaResult{NoVariance: true, BetweenDF: dfB, WithinDF: dfW}
	}
	if msw == 0 {
		res.FValue = math.Inf(1)
		return res
	}

	res.FValue = msb / msw
	dist := distuv.F{D1: float64(dfB), D2: float64(dfW)}
	res.PValue = 1 - dist.CDF(res.FValue)
	return res
}
