package domain

// TimeSystem tags the time scale an observation's time is expressed in.
type TimeSystem string

const (
	// TimeJD is a plain Julian Date.
	TimeJD TimeSystem = "JD"
	// TimeHJD is a heliocentric Julian Date.
	TimeHJD TimeSystem = "HJD"
)

// Observation is a single timestamped brightness measurement.
//
// Phase is only meaningful when Phased is true. Observations handed out by models
// are never phased; phase-folded views carry phased copies.
type Observation struct {
	Time        float64
	Magnitude   float64
	Uncertainty float64
	Band        string
	TimeSystem  TimeSystem
	Phase       float64
	Phased      bool
}

// Dataset is the set of observations loaded for one star.
type Dataset struct {
	Star         string
	Observations []Observation
	// Fingerprint identifies the observation content, see the config loader.
	Fingerprint uint64
}
