package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gmoroz-comanager/co-console/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive scheduling calendar",
		Example: `
co-console ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cache, err := load()
			if err != nil {
				return err
			}
			i := ui.UI{Client: client, Cache: cache}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
