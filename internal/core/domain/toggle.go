package domain

// PlotToggle names a user-controllable plot display preference.
type PlotToggle uint8

const (
	// ToggleErrorBars shows error bars.
	ToggleErrorBars PlotToggle = iota
	// ToggleCrossHairs shows cross-hairs.
	ToggleCrossHairs
	// ToggleRangeAxisInversion inverts the magnitude axis.
	ToggleRangeAxisInversion
	// ToggleDomainAxisInversion inverts the time/phase axis.
	ToggleDomainAxisInversion
	// ToggleSeriesOrderInversion inverts the series rendering order.
	ToggleSeriesOrderInversion
	// ToggleJoinMeans joins mean points with a line.
	ToggleJoinMeans

	// NumPlotToggles is the number of toggles.
	NumPlotToggles = int(ToggleJoinMeans) + 1
)

var toggleNames = [NumPlotToggles]string{
	"error-bars",
	"cross-hairs",
	"range-axis-inversion",
	"domain-axis-inversion",
	"series-order-inversion",
	"join-means",
}

// String returns the toggle name.
func (t PlotToggle) String() string {
	if int(t) >= NumPlotToggles {
		return "unknown"
	}
	return toggleNames[t]
}
