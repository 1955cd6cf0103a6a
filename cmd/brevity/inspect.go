package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/brevity/internal/app"
	"github.com/five82/brevity/internal/location"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the decks and slides of a presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := location.Split(args[0])
			return app.Inspect(cmd.OutOrStdout(), path)
		},
	}
}
