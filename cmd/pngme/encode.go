package main

import (
	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/spf13/cobra"
)

// NewEncodeCommand creates the 'encode' command.
func NewEncodeCommand() *cobra.Command {
	var opts commands.EncodeOptions

	cmd := &cobra.Command{
		Use:   "encode <file> <chunk-type> <message>",
		Short: "Hide a message in a PNG file.",
		Long: `Appends a chunk of the given type holding the message. The file is
rewritten in place unless --output is given.`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: chunkArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Encode(args[0], args[1], args[2], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the result to this file instead of the input")
	cmd.Flags().BoolVarP(&opts.Split, "split", "s", false, "Spread a long message over several chunks")
	cmd.Flags().BoolVarP(&opts.Backup, "backup", "b", false, "Keep a copy of the input as <file>.bak before overwriting it")

	return cmd
}
