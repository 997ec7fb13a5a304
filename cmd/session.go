package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"magewell-cli/internal/client"
	"magewell-cli/internal/config"
)

// authError is the one failure that ends a device command with exit 1.
type authError struct {
	ip string
}

func (e authError) Error() string {
	return fmt.Sprintf("Failed to authenticate with switcher at %s", e.ip)
}

func newClient() (*client.MagewellClient, config.Device, error) {
	dev, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, dev, err
	}

	return client.New(client.ClientConfig{
		Address:  dev.IP,
		Username: dev.Username,
		Password: dev.Password,
		Debug:    debug,
	}), dev, nil
}

// loginSession builds the device session and logs in eagerly.
func loginSession() (*client.MagewellClient, error) {
	api, dev, err := newClient()
	if err != nil {
		return nil, err
	}
	if !api.Login() {
		return nil, authError{ip: dev.IP}
	}
	return api, nil
}

// setupSession is loginSession for Run funcs: any error exits 1.
func setupSession() *client.MagewellClient {
	api, err := loginSession()
	if err != nil {
		if _, ok := err.(authError); ok {
			fmt.Println(err)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
	return api
}
