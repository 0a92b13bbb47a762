package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starview/cmd/starview/commands"
	"go.trai.ch/starview/internal/app"
	"go.trai.ch/starview/internal/build"
	"go.trai.ch/starview/internal/core/domain"
)

type mockApp struct {
	showFunc  func(ctx context.Context, path string, opts app.ShowOptions) error
	watchFunc func(ctx context.Context, path string, opts app.WatchOptions) error
}

func (m *mockApp) Show(ctx context.Context, path string, opts app.ShowOptions) error {
	if m.showFunc != nil {
		return m.showFunc(ctx, path, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, path string, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, path, opts)
	}
	return nil
}

func TestCommands_Show(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var (
			capturedPath string
			capturedOpts app.ShowOptions
		)

		mock := &mockApp{
			showFunc: func(_ context.Context, path string, opts app.ShowOptions) error {
				capturedPath = path
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.SessionFileName, capturedPath)
		assert.Equal(t, app.ShowOptions{Projection: domain.ProjectionRaw}, capturedOpts)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var (
			capturedPath string
			capturedOpts app.ShowOptions
		)

		mock := &mockApp{
			showFunc: func(_ context.Context, path string, opts app.ShowOptions) error {
				capturedPath = path
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show", "rcar.yaml", "--phase", "--period", "309", "--json", "--trace"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "rcar.yaml", capturedPath)
		assert.Equal(t, domain.ProjectionPhaseFolded, capturedOpts.Projection)
		assert.Nil(t, capturedOpts.Epoch)
		require.NotNil(t, capturedOpts.Period)
		assert.InDelta(t, 309, *capturedOpts.Period, 0)
		assert.True(t, capturedOpts.JSONLogs)
		assert.True(t, capturedOpts.TraceSpans)
	})

	t.Run("plot toggle flags", func(t *testing.T) {
		var capturedOpts app.ShowOptions

		mock := &mockApp{
			showFunc: func(_ context.Context, _ string, opts app.ShowOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show", "--no-error-bars", "--invert-time"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedOpts.HideErrorBars)
		assert.True(t, capturedOpts.InvertTime)
	})

	t.Run("explicit zero epoch is an override", func(t *testing.T) {
		var capturedOpts app.ShowOptions

		mock := &mockApp{
			showFunc: func(_ context.Context, _ string, opts app.ShowOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show", "--epoch", "0"})

		require.NoError(t, cli.Execute(context.Background()))
		require.NotNil(t, capturedOpts.Epoch)
		assert.Zero(t, *capturedOpts.Epoch)
	})

	t.Run("returns error on show failure", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, _ string, _ app.ShowOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"show"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"show", "a.yaml", "b.yaml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Watch(t *testing.T) {
	var (
		capturedPath string
		capturedOpts app.WatchOptions
	)

	mock := &mockApp{
		watchFunc: func(_ context.Context, path string, opts app.WatchOptions) error {
			capturedPath = path
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "rcar.yaml", "--metrics-addr", ":9090", "--epoch", "2450000"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "rcar.yaml", capturedPath)
	assert.Equal(t, ":9090", capturedOpts.MetricsAddr)
	assert.Equal(t, domain.ProjectionRaw, capturedOpts.Projection)
	require.NotNil(t, capturedOpts.Epoch)
	assert.InDelta(t, 2450000, *capturedOpts.Epoch, 0)
	assert.Nil(t, capturedOpts.Period)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "starview version "+build.Version)
}
