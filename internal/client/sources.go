package client

import "magewell-cli/pkg/models"

// GetSources lists the NDI sources the device can see, in device order.
// A successful reply without a sources field yields an empty, non-nil slice.
func (c *MagewellClient) GetSources() ([]models.Source, bool) {
	if !c.EnsureAuthenticated() {
		return nil, false
	}

	var res models.SourceListResponse
	body, err := c.call(map[string]string{"method": "get-ndi-sources"}, &res)
	if err != nil {
		c.log.Printf("Error getting NDI sources: %v", err)
		return nil, false
	}

	if !models.OK(res.Status) {
		c.log.Printf("Failed to get NDI sources: %s", body)
		return nil, false
	}

	if res.Sources == nil {
		return []models.Source{}, true
	}
	return res.Sources, true
}
