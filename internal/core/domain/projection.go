package domain

// Projection is how observations are arranged for analysis.
// The set is closed: RAW or PHASE_FOLDED.
type Projection uint8

const (
	// ProjectionRaw is the unmodified time-ordered view.
	ProjectionRaw Projection = iota
	// ProjectionPhaseFolded is the view folded onto a repeating phase cycle.
	ProjectionPhaseFolded
)

// String returns the projection name.
func (p Projection) String() string {
	switch p {
	case ProjectionRaw:
		return "raw"
	case ProjectionPhaseFolded:
		return "phase"
	default:
		return "unknown"
	}
}

// SeriesRole selects the semantics of a derived view's value column.
type SeriesRole uint8

const (
	// RoleModel is a fitted model curve.
	RoleModel SeriesRole = iota
	// RoleResiduals is the residual series (observed minus fitted).
	RoleResiduals
)

// String returns the role name.
func (r SeriesRole) String() string {
	switch r {
	case RoleModel:
		return "model"
	case RoleResiduals:
		return "residuals"
	default:
		return "unknown"
	}
}

// ValueColumn returns the column label for the role's value.
func (r SeriesRole) ValueColumn() string {
	if r == RoleResiduals {
		return "Residual"
	}
	return "Model"
}
