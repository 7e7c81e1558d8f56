package main

import (
	"github.com/spf13/cobra"
)

// NewCompletionCommand creates the 'completion' command. Completions include
// the chunk types found in the file named on the command line.
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `Prints a shell completion script for pngme.

  Bash:       source <(pngme completion bash)
  Zsh:        pngme completion zsh > "${fpath[1]}/_pngme"
  Fish:       pngme completion fish | source
  PowerShell: pngme completion powershell | Out-String | Invoke-Expression

Start a new shell for changes to take effect.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
