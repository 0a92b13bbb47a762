package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starview/internal/adapters/config"
	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const validSession = `
version: "1"
star: "R Car"
observations:
  - {time: 2450000.5, magnitude: 7.1, uncertainty: 0.02, band: V, timeSystem: JD}
  - {time: 2450001.5, magnitude: 7.3, uncertainty: 0.03, band: V}
  - {time: 2450002.5, magnitude: 7.2, uncertainty: 0, band: Vis, timeSystem: HJD}
models:
  - {kind: polynomial, degree: 2}
phase: {epoch: 2450000.0, period: 309.0}
binning: {size: 20}
`

func writeSession(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.SessionFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func TestLoader_Load(t *testing.T) {
	session, err := newLoader(t).Load(writeSession(t, validSession))
	require.NoError(t, err)

	assert.Equal(t, "R Car", session.Dataset.Star)
	require.Len(t, session.Dataset.Observations, 3)

	first := session.Dataset.Observations[0]
	assert.InDelta(t, 2450000.5, first.Time, 0)
	assert.InDelta(t, 7.1, first.Magnitude, 0)
	assert.InDelta(t, 0.02, first.Uncertainty, 0)
	assert.Equal(t, "V", first.Band)
	assert.Equal(t, domain.TimeJD, first.TimeSystem)
	assert.False(t, first.Phased)

	assert.Equal(t, domain.TimeJD, session.Dataset.Observations[1].TimeSystem, "empty time system means JD")
	assert.Equal(t, domain.TimeHJD, session.Dataset.Observations[2].TimeSystem)

	assert.Equal(t, []domain.ModelSpec{{Kind: domain.ModelPolynomial, Degree: 2}}, session.Models)
	require.NotNil(t, session.Phase)
	assert.InDelta(t, 309.0, session.Phase.Period, 0)
	require.NotNil(t, session.Binning)
	assert.InDelta(t, 20.0, session.Binning.Size, 0)

	assert.NotZero(t, session.Dataset.Fingerprint)
	assert.NotZero(t, session.Fingerprint)
}

func TestLoader_Load_OptionalBlocks(t *testing.T) {
	session, err := newLoader(t).Load(writeSession(t, `
version: "1"
star: "SS Cyg"
observations:
  - {time: 1, magnitude: 9}
`))
	require.NoError(t, err)

	assert.Nil(t, session.Phase)
	assert.Nil(t, session.Binning)
	assert.Empty(t, session.Models)
}

func TestLoader_Load_ZeroPeriodIsAccepted(t *testing.T) {
	session, err := newLoader(t).Load(writeSession(t, `
version: "1"
star: "X"
phase: {epoch: 0, period: 0}
`))
	require.NoError(t, err)
	require.NotNil(t, session.Phase)
	assert.Zero(t, session.Phase.Period)
}

func TestLoader_Load_WarnsWithoutStar(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewLoader(log).Load(writeSession(t, `version: "1"`))
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported version",
			content: `version: "2"`,
			wantErr: domain.ErrUnsupportedVersion,
		},
		{
			name: "negative uncertainty",
			content: `
version: "1"
star: X
observations:
  - {time: 1, magnitude: 9, uncertainty: -0.1}
`,
			wantErr: domain.ErrInvalidObservation,
		},
		{
			name: "non-finite magnitude",
			content: `
version: "1"
star: X
observations:
  - {time: 1, magnitude: .nan}
`,
			wantErr: domain.ErrInvalidObservation,
		},
		{
			name: "infinite time",
			content: `
version: "1"
star: X
observations:
  - {time: .inf, magnitude: 9}
`,
			wantErr: domain.ErrInvalidObservation,
		},
		{
			name: "unknown time system",
			content: `
version: "1"
star: X
observations:
  - {time: 1, magnitude: 9, timeSystem: BJD}
`,
			wantErr: domain.ErrInvalidObservation,
		},
		{
			name: "unknown model kind",
			content: `
version: "1"
star: X
models:
  - {kind: fourier, degree: 1}
`,
			wantErr: domain.ErrUnknownModelKind,
		},
		{
			name: "degree too high",
			content: `
version: "1"
star: X
models:
  - {kind: polynomial, degree: 11}
`,
			wantErr: domain.ErrInvalidModelSpec,
		},
		{
			name: "negative degree",
			content: `
version: "1"
star: X
models:
  - {kind: polynomial, degree: -1}
`,
			wantErr: domain.ErrInvalidModelSpec,
		},
		{
			name: "zero bin size",
			content: `
version: "1"
star: X
binning: {size: 0}
`,
			wantErr: domain.ErrInvalidBinning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeSession(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	_, err := newLoader(t).Load(writeSession(t, "version: ["))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
