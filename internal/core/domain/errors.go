package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidParameter is returned when phase parameters cannot produce a valid phase,
	// e.g. a zero, NaN or infinite period.
	ErrInvalidParameter = zerr.New("invalid phase parameter")

	// ErrMissingDependency is returned when a view is requested for a model that is not there.
	ErrMissingDependency = zerr.New("missing model")

	// ErrConfigReadFailed is returned when the session file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read session file")

	// ErrConfigParseFailed is returned when the session file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse session file")

	// ErrUnsupportedVersion is returned when the session file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported session file version")

	// ErrInvalidObservation is returned when an observation in the session file fails validation.
	ErrInvalidObservation = zerr.New("invalid observation")

	// ErrUnknownModelKind is returned when a model specification names an unknown model kind.
	ErrUnknownModelKind = zerr.New("unknown model kind")

	// ErrInvalidModelSpec is returned when a model specification has out-of-range settings.
	ErrInvalidModelSpec = zerr.New("invalid model specification")

	// ErrInvalidBinning is returned when the binning block of a session file is invalid.
	ErrInvalidBinning = zerr.New("invalid binning settings")

	// ErrFitFailed is returned when a model cannot be fitted to the observations.
	ErrFitFailed = zerr.New("model fit failed")

	// ErrInsufficientData is returned when there are too few observations for a computation.
	ErrInsufficientData = zerr.New("insufficient data")

	// ErrWatcherFailed is returned when the session file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch session file")

	// ErrMetricsServerFailed is returned when the metrics endpoint stops with an error.
	ErrMetricsServerFailed = zerr.New("metrics server failed")
)
