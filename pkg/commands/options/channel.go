// Package options defines shared flag helpers for CLI commands.
package options

import "github.com/spf13/cobra"

// ChannelOptions captures channel targeting flags.
type ChannelOptions struct {
	Channel  string
	SetColor string
	Bots     bool
}

// AddChannelArgs wires the channel selection flag.
func AddChannelArgs(cmd *cobra.Command, o *ChannelOptions) {
	cmd.Flags().StringVarP(&o.Channel, "channel", "c", "",
		"Specify the channel documentId.")
}

// AddColorArgs wires the calendar color assignment flag.
func AddColorArgs(cmd *cobra.Command, o *ChannelOptions) {
	cmd.Flags().StringVar(&o.SetColor, "set-color", "",
		"Assign a calendar color (#RRGGBB) to the channel.")
}

// AddBotsArg wires the bot listing toggle.
func AddBotsArg(cmd *cobra.Command, o *ChannelOptions) {
	cmd.Flags().BoolVar(&o.Bots, "bots", false,
		"List the registered bots instead of channels.")
}
