package client

import "magewell-cli/pkg/models"

// GetCurrentChannel returns the channel the device is currently showing.
// ok is false when not authenticated, unreachable, or on a non-zero status.
func (c *MagewellClient) GetCurrentChannel() (models.Channel, bool) {
	if !c.EnsureAuthenticated() {
		return models.Channel{}, false
	}

	var res models.ChannelResponse
	body, err := c.call(map[string]string{"method": "get-channel"}, &res)
	if err != nil {
		c.log.Printf("Error getting current channel: %v", err)
		return models.Channel{}, false
	}

	if !models.OK(res.Status) {
		c.log.Printf("Failed to get current channel: %s", body)
		return models.Channel{}, false
	}

	return models.Channel{
		Name:  res.Name,
		IsNDI: truthy(res.NDIName),
	}, true
}

// SetChannel switches the device input to the NDI source with the given name.
func (c *MagewellClient) SetChannel(name string) bool {
	if !c.EnsureAuthenticated() {
		return false
	}

	var res models.StatusResponse
	body, err := c.call(map[string]string{
		"method":   "set-channel",
		"ndi-name": "true",
		"name":     name,
	}, &res)
	if err != nil {
		c.log.Printf("Error setting channel: %v", err)
		return false
	}

	if !models.OK(res.Status) {
		c.log.Printf("Failed to set channel: %s", body)
		return false
	}

	c.log.Printf("Successfully switched to source: %s", name)
	return true
}

// truthy mirrors how loosely typed JSON values read as booleans.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return false
}
