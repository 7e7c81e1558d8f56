package main

import (
	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' command.
func NewRemoveCommand() *cobra.Command {
	var opts commands.RemoveOptions

	cmd := &cobra.Command{
		Use:               "remove <file> <chunk-type>",
		Short:             "Remove a chunk from a PNG file.",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: chunkArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Remove(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the result to this file instead of the input")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Remove every chunk of the type, not just the first")
	cmd.Flags().BoolVarP(&opts.Backup, "backup", "b", false, "Keep a copy of the input as <file>.bak before overwriting it")

	return cmd
}
