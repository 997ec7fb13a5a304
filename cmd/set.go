package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"magewell-cli/internal/client"
)

var setCmd = &cobra.Command{
	Use:     "set <name>",
	Short:   "Set the current channel",
	Long:    `Switch the device input to the NDI source with the given name, as shown by 'list'.`,
	Example: `  magewell-cli --ip 10.0.0.2 set "STUDIO-PC (OBS)"`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSet(cmd.OutOrStdout(), setupSession(), args[0])
	},
}

// runSet reports the outcome. A refused switch is not a process failure.
func runSet(w io.Writer, api *client.MagewellClient, source string) {
	if api.SetChannel(source) {
		fmt.Fprintf(w, "Successfully switched to: %s\n", source)
	} else {
		fmt.Fprintf(w, "Failed to switch to: %s\n", source)
	}
}

func init() {
	rootCmd.AddCommand(setCmd)
}
