package domain

// NewDatasetMessage announces that a new observation set replaced the previous one.
type NewDatasetMessage struct {
	Star        string
	Fingerprint uint64
	Count       int
}

// PhaseChangeMessage announces a new phase-folding context.
type PhaseChangeMessage struct {
	Epoch  float64
	Period float64
}
