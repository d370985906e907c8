package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gmoroz-comanager/co-console/pkg/commands/options"
	"github.com/gmoroz-comanager/co-console/pkg/runner/channels"
)

func addChannels(topLevel *cobra.Command) {
	co := &options.ChannelOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "list channels or assign a calendar color",
		Example: `
co-console channels
co-console channels --bots
co-console channels --channel abc123 --set-color "#1976D2"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if co.SetColor != "" && co.Channel == "" {
				return errors.New("--set-color requires --channel")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cache, err := load()
			if err != nil {
				return err
			}
			c := channels.Channels{
				ShowID:   io.ShowID,
				Bots:     co.Bots,
				Channel:  co.Channel,
				SetColor: co.SetColor,
				Client:   client,
				Cache:    cache,
			}
			return c.Do(context.Background())
		},
	}

	options.AddChannelArgs(cmd, co)
	options.AddColorArgs(cmd, co)
	options.AddBotsArg(cmd, co)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
