// Package common contains constants and sentinel errors shared by the
// scanner and the authority.
package common

// DeviceTokenHeaderName is the gRPC metadata key carrying the scanner's
// device token on outbound requests.
const DeviceTokenHeaderName = "device_token"

// Check-in types as they travel on the wire and sit in the queue.
const (
	CheckInTypeEntry = "entry"
	CheckInTypeExit  = "exit"
)
