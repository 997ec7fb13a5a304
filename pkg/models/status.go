package models

// StatusOK is the device API convention for a successful call.
const StatusOK = 0

// StatusResponse is the minimal envelope shared by every /mwapi reply
type StatusResponse struct {
	Status *int `json:"status"`
}

// OK reports whether the device answered with status 0.
// A missing status field is a failure.
func OK(status *int) bool {
	return status != nil && *status == StatusOK
}
