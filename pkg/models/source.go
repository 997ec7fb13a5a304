package models

// SourceListResponse wraps the method=get-ndi-sources reply
type SourceListResponse struct {
	Status  *int     `json:"status"`
	Sources []Source `json:"sources"`
}

// Source is a single NDI stream discovered by the device
type Source struct {
	Name      string `json:"ndi-name"`
	IPAddress string `json:"ip-addr"`
}
