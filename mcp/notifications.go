package mcp

const (
	// Sent by the client once initialization has completed.
	NotificationInitialized string = "notifications/initialized"

	// Sent by either side to abandon an in-flight request.
	NotificationCancelled string = "notifications/cancelled"
)
