package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "badger version %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
