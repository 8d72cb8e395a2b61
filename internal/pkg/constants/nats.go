package constants

// NATS Subjects
const (
	// Load lifecycle
	SubjectLoadCreated       = "load.created"
	SubjectLoadStatusChanged = "load.status_changed"
	SubjectLoadAssigned      = "load.assigned"
	SubjectLoadDelivered     = "load.delivered"
	SubjectLoadCancelled     = "load.cancelled"

	// Driver registry
	SubjectDriverOnboarded     = "driver.onboarded"
	SubjectDriverStatusChanged = "driver.status_changed"
	SubjectDriverRouteRecorded = "driver.route_recorded"
	SubjectDriverRouteRemoved  = "driver.route_removed"

	// Wildcards
	SubjectLoadAll   = "load.>"
	SubjectDriverAll = "driver.>"
)
