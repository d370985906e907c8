package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/gmoroz-comanager/co-console/pkg/api"
	"github.com/gmoroz-comanager/co-console/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "co-console",
		Short: base.Wrap80("Content-ops scheduling console: drag ideas onto a calendar of Telegram channel posts."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addChannels(topLevel)
	addPosts(topLevel)
	addPublish(topLevel)
	addPin(topLevel)
	addVersion(topLevel)
}

// load builds the API client and snapshot cache from configuration.
func load() (*api.Client, *store.Cache, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return api.New(cfg.ServerURL, cfg.Token), store.OpenCache(cfg.CachePath), nil
}
