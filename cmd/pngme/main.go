package main

import (
	"fmt"
	"os"

	"github.com/gingerrexayers/pngme-go/internal/pngme/lib"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "pngme",
		Short: "Hide, read and remove messages in PNG chunks.",
		Long: `pngme stores text messages in their own chunks inside PNG files. The
image data is left untouched, so the picture still opens everywhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lib.ConfigureLogging(os.Stderr, verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewEncodeCommand())
	rootCmd.AddCommand(NewDecodeCommand())
	rootCmd.AddCommand(NewRemoveCommand())
	rootCmd.AddCommand(NewPrintCommand())
	rootCmd.AddCommand(NewScanCommand())
	rootCmd.AddCommand(NewCompletionCommand())
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := lib.Describe(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
