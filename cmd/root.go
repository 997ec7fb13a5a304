package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"magewell-cli/internal/config"
)

var cfgFile string
var jsonOutput bool
var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "magewell-cli",
	Short: "Control a Magewell Pro Convert video switcher",
	Long: `Query and switch the input of a Magewell Pro Convert device
through its /mwapi HTTP interface.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.magewell-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Dump HTTP requests and responses")

	rootCmd.PersistentFlags().String("ip", "", "IP address of the Magewell device")
	rootCmd.PersistentFlags().String("username", config.DefaultUsername, "Username for authentication")
	rootCmd.PersistentFlags().String("password", config.DefaultPassword, "Password for authentication")

	for _, name := range []string{"ip", "username", "password"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func printJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "Error encoding JSON: %v\n", err)
	}
}
