package config

// SessionFile represents the structure of the starview.yaml session file.
type SessionFile struct {
	Version      string           `yaml:"version"`
	Star         string           `yaml:"star"`
	Observations []ObservationDTO `yaml:"observations"`
	Models       []ModelDTO       `yaml:"models"`
	Phase        *PhaseDTO        `yaml:"phase"`
	Binning      *BinningDTO      `yaml:"binning"`
}

// ObservationDTO represents one observation in the session file.
type ObservationDTO struct {
	Time        float64 `yaml:"time"`
	Magnitude   float64 `yaml:"magnitude"`
	Uncertainty float64 `yaml:"uncertainty"`
	Band        string  `yaml:"band"`
	TimeSystem  string  `yaml:"timeSystem"`
}

// ModelDTO represents a model request in the session file.
type ModelDTO struct {
	Kind   string `yaml:"kind"`
	Degree int    `yaml:"degree"`
}

// PhaseDTO represents the phase-folding context in the session file.
type PhaseDTO struct {
	Epoch  float64 `yaml:"epoch"`
	Period float64 `yaml:"period"`
}

// BinningDTO represents the binning settings in the session file.
type BinningDTO struct {
	Size float64 `yaml:"size"`
}
