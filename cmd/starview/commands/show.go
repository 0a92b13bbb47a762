package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/starview/internal/app"
	"go.trai.ch/starview/internal/core/domain"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [session]",
		Short: "Render the model and residual views of a session file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Show(cmd.Context(), sessionPath(args), showOptions(cmd))
		},
	}
	addShowFlags(cmd)
	return cmd
}

func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("phase", "p", false, "Render phase-folded views instead of raw ones")
	cmd.Flags().Float64("epoch", 0, "Override the phase epoch of the session file")
	cmd.Flags().Float64("period", 0, "Override the phase period of the session file")
	cmd.Flags().Bool("json", false, "Write logs as JSON")
	cmd.Flags().Bool("trace", false, "Log every finished span")
	cmd.Flags().Bool("no-error-bars", false, "Omit the uncertainty column from rendered views")
	cmd.Flags().Bool("invert-time", false, "List rows from the last time or phase to the first")
}

func showOptions(cmd *cobra.Command) app.ShowOptions {
	phased, _ := cmd.Flags().GetBool("phase")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	trace, _ := cmd.Flags().GetBool("trace")
	noErrorBars, _ := cmd.Flags().GetBool("no-error-bars")
	invertTime, _ := cmd.Flags().GetBool("invert-time")

	opts := app.ShowOptions{
		Projection:    domain.ProjectionRaw,
		JSONLogs:      jsonLogs,
		TraceSpans:    trace,
		HideErrorBars: noErrorBars,
		InvertTime:    invertTime,
	}
	if phased {
		opts.Projection = domain.ProjectionPhaseFolded
	}

	// Unset flags leave the session file's phase block alone.
	if cmd.Flags().Changed("epoch") {
		epoch, _ := cmd.Flags().GetFloat64("epoch")
		opts.Epoch = &epoch
	}
	if cmd.Flags().Changed("period") {
		period, _ := cmd.Flags().GetFloat64("period")
		opts.Period = &period
	}
	return opts
}

func sessionPath(args []string) string {
	if len(args) == 0 {
		return domain.SessionFileName
	}
	return args[0]
}
