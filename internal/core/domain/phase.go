package domain

// PhaseParameters is the current phase-folding context.
// Exists is false until the first phase change has been seen.
type PhaseParameters struct {
	Epoch  float64
	Period float64
	Exists bool
}
