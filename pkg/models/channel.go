package models

// ChannelResponse is the body returned by method=get-channel
type ChannelResponse struct {
	Status *int   `json:"status"`
	Name   string `json:"name"`
	// The device reports either a bool or the NDI source name here
	NDIName any `json:"ndi-name"`
}

// Channel is the currently selected input of the device
type Channel struct {
	Name  string `json:"name"`
	IsNDI bool   `json:"ndi"`
}
