package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gmoroz-comanager/co-console/pkg/commands/options"
	"github.com/gmoroz-comanager/co-console/pkg/runner/publish"
)

func addPublish(topLevel *cobra.Command) {
	co := &options.ChannelOptions{}

	cmd := &cobra.Command{
		Use:   "publish [idea documentId]",
		Short: "publish an idea to a channel right away",
		Example: `
co-console publish idea123 --channel abc123
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := load()
			if err != nil {
				return err
			}
			p := publish.Publish{Idea: args[0], Channel: co.Channel, Client: client}
			return p.Do(context.Background())
		},
	}

	options.AddChannelArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
