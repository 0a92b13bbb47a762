// Package config provides the session file loader for starview.
package config

import (
	"fmt"
	"math"
	"os"

	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SessionLoader = (*Loader)(nil)

// Loader implements ports.SessionLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the session file at path and returns the validated session.
// The phase period is not validated here; phase-folded view requests reject it.
func (l *Loader) Load(path string) (*domain.Session, error) {
	var file SessionFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != domain.SessionVersion {
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", file.Version)
	}

	if file.Star == "" {
		l.Logger.Warn(fmt.Sprintf("%s does not name a star", path))
	}

	observations, err := buildObservations(file.Observations)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	models, err := buildModels(file.Models)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	session := &domain.Session{
		Dataset: domain.Dataset{
			Star:         file.Star,
			Observations: observations,
		},
		Models: models,
	}

	if file.Phase != nil {
		session.Phase = &domain.PhaseChangeMessage{Epoch: file.Phase.Epoch, Period: file.Phase.Period}
	}

	if file.Binning != nil {
		if !(file.Binning.Size > 0) || math.IsInf(file.Binning.Size, 0) {
			return nil, zerr.With(domain.ErrInvalidBinning, "size", file.Binning.Size)
		}
		session.Binning = &domain.BinningSpec{Size: file.Binning.Size}
	}

	session.Dataset.Fingerprint = datasetFingerprint(&session.Dataset)
	session.Fingerprint = sessionFingerprint(session)

	return session, nil
}

func buildObservations(dtos []ObservationDTO) ([]domain.Observation, error) {
	observations := make([]domain.Observation, 0, len(dtos))
	for i := range dtos {
		dto := &dtos[i]
		if err := validateObservation(dto); err != nil {
			return nil, zerr.With(err, "observation", i)
		}

		ts := domain.TimeSystem(dto.TimeSystem)
		if ts == "" {
			ts = domain.TimeJD
		}

		observations = append(observations, domain.Observation{
			Time:        dto.Time,
			Magnitude:   dto.Magnitude,
			Uncertainty: dto.Uncertainty,
			Band:        dto.Band,
			TimeSystem:  ts,
		})
	}
	return observations, nil
}

func validateObservation(dto *ObservationDTO) error {
	switch {
	case !isFinite(dto.Time):
		return zerr.With(domain.ErrInvalidObservation, "time", dto.Time)
	case !isFinite(dto.Magnitude):
		return zerr.With(domain.ErrInvalidObservation, "magnitude", dto.Magnitude)
	case !isFinite(dto.Uncertainty) || dto.Uncertainty < 0:
		return zerr.With(domain.ErrInvalidObservation, "uncertainty", dto.Uncertainty)
	}

	switch domain.TimeSystem(dto.TimeSystem) {
	case "", domain.TimeJD, domain.TimeHJD:
		return nil
	default:
		return zerr.With(domain.ErrInvalidObservation, "time_system", dto.TimeSystem)
	}
}

func buildModels(dtos []ModelDTO) ([]domain.ModelSpec, error) {
	models := make([]domain.ModelSpec, 0, len(dtos))
	for i, dto := range dtos {
		kind := domain.ModelKind(dto.Kind)
		if kind != domain.ModelPolynomial {
			return nil, zerr.With(zerr.With(domain.ErrUnknownModelKind, "kind", dto.Kind), "model", i)
		}
		if dto.Degree < 0 || dto.Degree > domain.MaxPolynomialDegree {
			return nil, zerr.With(zerr.With(domain.ErrInvalidModelSpec, "degree", dto.Degree), "model", i)
		}
		models = append(models, domain.ModelSpec{Kind: kind, Degree: dto.Degree})
	}
	return models, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is supplied by the user on the command line
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
