package domain

import "strconv"

// ViewRow is one row of a derived view.
type ViewRow struct {
	Time        float64
	Phase       float64
	Value       float64
	Uncertainty float64
}

// DerivedView is a presentation-ready projection over a model's fit or residual series.
// Callers must treat it as read-only: the cache hands out the same instance on repeated requests.
type DerivedView struct {
	Role       SeriesRole
	Projection Projection
	// Epoch and Period record the phase context the view was built with.
	// They are zero for raw views.
	Epoch   float64
	Period  float64
	Columns []string
	Rows    []ViewRow
	Summary string
}

// Len returns the number of rows.
func (v *DerivedView) Len() int {
	return len(v.Rows)
}

// Cells formats row i in column order.
func (v *DerivedView) Cells(i int) []string {
	row := v.Rows[i]
	cells := make([]string, 0, len(v.Columns))
	cells = append(cells, formatFloat(row.Time))
	if v.Projection == ProjectionPhaseFolded {
		cells = append(cells, formatFloat(row.Phase))
	}
	return append(cells, formatFloat(row.Value), formatFloat(row.Uncertainty))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
