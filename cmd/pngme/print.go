package main

import (
	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/spf13/cobra"
)

// NewPrintCommand creates the 'print' command.
func NewPrintCommand() *cobra.Command {
	var opts commands.PrintOptions

	cmd := &cobra.Command{
		Use:               "print <file>",
		Short:             "List the chunks of a PNG file.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: pngFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Print(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the listing as JSON")

	return cmd
}
