package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/starview/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [session]",
		Short: "Render a session file and render it again whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("metrics-addr")
			return c.app.Watch(cmd.Context(), sessionPath(args), app.WatchOptions{
				ShowOptions: showOptions(cmd),
				MetricsAddr: addr,
			})
		},
	}
	addShowFlags(cmd)
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}
