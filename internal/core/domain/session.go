package domain

// ModelKind names a model fitting technique.
type ModelKind string

// ModelPolynomial is a least-squares polynomial in time.
const ModelPolynomial ModelKind = "polynomial"

// ModelSpec requests a model to be fitted to the loaded observations.
type ModelSpec struct {
	Kind   ModelKind
	Degree int
}

// BinningSpec requests mean binning of the observations.
type BinningSpec struct {
	// Size is the bin width in days.
	Size float64
}

// Session is everything a session file describes.
type Session struct {
	Dataset Dataset
	Models  []ModelSpec
	// Phase is nil when the session does not define a phase-folding context.
	Phase   *PhaseChangeMessage
	Binning *BinningSpec
	// Fingerprint identifies the whole session content, dataset included.
	Fingerprint uint64
}
