package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gmoroz-comanager/co-console/pkg/runner/pin"
)

func addPin(topLevel *cobra.Command) {
	clearPin := false

	cmd := &cobra.Command{
		Use:   "pin [documentId]",
		Short: "show or set the default drop-target channel",
		Example: `
co-console pin
co-console pin abc123
co-console pin --clear
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cache, err := load()
			if err != nil {
				return err
			}
			p := pin.Pin{Clear: clearPin, Client: client, Cache: cache}
			if len(args) == 1 {
				p.Channel = args[0]
			}
			return p.Do(context.Background())
		},
	}
	cmd.Flags().BoolVar(&clearPin, "clear", false, "Clear the pinned channel.")

	topLevel.AddCommand(cmd)
}
