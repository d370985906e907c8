package options

import (
	"github.com/spf13/cobra"

	"github.com/gmoroz-comanager/co-console/pkg/timeutil"
)

// WindowOptions captures the listing window flag.
type WindowOptions struct {
	Window string
}

// AddWindowArgs wires the window flag, e.g. "1w", "3d", "1w2d".
func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", timeutil.DefaultWindow,
		"How far ahead to list, in w/d/h/m tokens.")
}
