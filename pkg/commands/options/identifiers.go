package options

import "github.com/spf13/cobra"

// IDOptions toggles documentId columns in listings.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the id visibility flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show documentIds in the output.")
}
