package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"magewell-cli/internal/client"
	"magewell-cli/internal/display"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current channel",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCurrent(cmd.OutOrStdout(), setupSession(), jsonOutput)
	},
}

func runCurrent(w io.Writer, api *client.MagewellClient, asJSON bool) {
	channel, ok := api.GetCurrentChannel()
	if !ok {
		fmt.Fprintln(w, "Failed to retrieve current channel.")
		return
	}

	if asJSON {
		printJSON(w, channel)
		return
	}

	display.Channel(w, channel)
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
