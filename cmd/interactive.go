package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"magewell-cli/internal/shell"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start interactive mode",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		shell.New(api, os.Stdin, os.Stdout).Run()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
