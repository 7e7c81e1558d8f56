package main

import (
	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/spf13/cobra"
)

// NewScanCommand creates the 'scan' command.
func NewScanCommand() *cobra.Command {
	var opts commands.ScanOptions

	cmd := &cobra.Command{
		Use:   "scan <chunk-type> [directory]",
		Short: "Find PNG files that carry a chunk type.",
		Long: `Walks a directory (the current one by default) and reports every PNG
file holding chunks of the given type. Paths matching patterns in a
.pngmeignore file at the top of the directory are skipped.`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return nil, cobra.ShellCompDirectiveFilterDirs
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 1 {
				dir = args[1]
			}
			return commands.Scan(dir, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the report as JSON")

	return cmd
}
