package main

import (
	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/spf13/cobra"
)

// chunkArgCompletions completes PNG file names for the first argument and
// the chunk types already present in that file for the second.
func chunkArgCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return []string{"png"}, cobra.ShellCompDirectiveFilterFileExt
	case 1:
		names, err := commands.ChunkTypes(args[0])
		if err != nil {
			// Don't return an error, just fail to complete.
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// pngFileCompletions completes a single PNG file argument.
func pngFileCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return []string{"png"}, cobra.ShellCompDirectiveFilterFileExt
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
