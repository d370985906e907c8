package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gmoroz-comanager/co-console/pkg/commands/options"
	"github.com/gmoroz-comanager/co-console/pkg/runner/posts"
)

func addPosts(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	co := &options.ChannelOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "list scheduled posts in a window",
		Example: `
co-console posts
co-console posts --window 3d
co-console posts --channel abc123 --show-ids
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := load()
			if err != nil {
				return err
			}
			p := posts.Posts{
				ShowID:  io.ShowID,
				Window:  wo.Window,
				Channel: co.Channel,
				Client:  client,
			}
			return p.Do(context.Background())
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddChannelArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)

	addPostsMove(cmd)
	addPostsRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addPostsMove(topLevel *cobra.Command) {
	at := ""

	cmd := &cobra.Command{
		Use:   "move [documentId]",
		Short: "reschedule a post to a new time",
		Example: `
co-console posts move abc123 --at "2026-09-01 14:00"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if at == "" {
				return errors.New("--at is required")
			}
			client, _, err := load()
			if err != nil {
				return err
			}
			m := posts.Move{DocumentID: args[0], At: at, Client: client}
			return m.Do(context.Background())
		},
	}
	cmd.Flags().StringVar(&at, "at", "", `New local time, "YYYY-MM-DD HH:MM".`)

	topLevel.AddCommand(cmd)
}

func addPostsRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm [documentId]",
		Short:   "remove a scheduled post",
		Aliases: []string{"remove", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := load()
			if err != nil {
				return err
			}
			r := posts.Remove{DocumentID: args[0], Client: client}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
