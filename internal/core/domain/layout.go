package domain

const (
	// SessionFileName is the default session file looked up in the working directory.
	SessionFileName = "starview.yaml"

	// SessionVersion is the only supported session file schema version.
	SessionVersion = "1"

	// MaxPolynomialDegree bounds polynomial model specifications.
	MaxPolynomialDegree = 10

	// MeanSourceSeriesKey is the stats ledger key for the binned series description.
	MeanSourceSeriesKey = "Mean Source Series"

	// AnovaKey is the stats ledger key for the ANOVA text.
	AnovaKey = "anova"
)
