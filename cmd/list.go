package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"magewell-cli/internal/client"
	"magewell-cli/internal/display"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available NDI sources",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runList(cmd.OutOrStdout(), setupSession(), jsonOutput)
	},
}

func runList(w io.Writer, api *client.MagewellClient, asJSON bool) {
	sources, ok := api.GetSources()
	if !ok {
		fmt.Fprintln(w, "Failed to retrieve NDI sources.")
		return
	}

	if asJSON {
		printJSON(w, sources)
		return
	}

	display.Sources(w, sources)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
