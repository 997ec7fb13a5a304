package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Defaults match the factory credentials of the device.
const (
	DefaultUsername = "Admin"
	DefaultPassword = "Admin"
)

// Device holds the connection settings resolved from flags, env and file.
type Device struct {
	IP       string
	Username string
	Password string
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".magewell-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".magewell-cli")
	}

	viper.SetDefault("username", DefaultUsername)
	viper.SetDefault("password", DefaultPassword)

	// MAGEWELL_IP, MAGEWELL_USERNAME, MAGEWELL_PASSWORD
	viper.SetEnvPrefix("magewell")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing file is fine, everything can come from flags.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
		}
	}
}

// Load resolves the device settings from v.
func Load(v *viper.Viper) (Device, error) {
	d := Device{
		IP:       strings.TrimSpace(v.GetString("ip")),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
	}
	if d.IP == "" {
		return d, errors.New("device address is required (--ip, MAGEWELL_IP or ip in config)")
	}
	return d, nil
}
