package main

import (
	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/spf13/cobra"
)

// NewDecodeCommand creates the 'decode' command.
func NewDecodeCommand() *cobra.Command {
	var opts commands.DecodeOptions

	cmd := &cobra.Command{
		Use:               "decode <file> <chunk-type>",
		Short:             "Print the message hidden in a PNG file.",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: chunkArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Decode(args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Joined, "joined", "j", false, "Join every chunk of the type, as written by encode --split")

	return cmd
}
