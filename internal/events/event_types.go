package events

import (
	"time"

	"github.com/spec-kit/field-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated         EventType = "employee_created"
	EventEmployeeUpdated         EventType = "employee_updated"
	EventEmployeeDeleted         EventType = "employee_deleted"
	EventEmployeeStatusChanged   EventType = "employee_status_changed"
	EventEmployeeAssigned        EventType = "employee_assigned"
	EventEmployeeLocationUpdated EventType = "employee_location_updated"
)

// AllEventTypes lists every employee event, mainly for subscribers
// that want the full stream.
func AllEventTypes() []EventType {
	return []EventType{
		EventEmployeeCreated,
		EventEmployeeUpdated,
		EventEmployeeDeleted,
		EventEmployeeStatusChanged,
		EventEmployeeAssigned,
		EventEmployeeLocationUpdated,
	}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID int64       `json:"employee_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	Name   string                `json:"name"`
	Status domain.EmployeeStatus `json:"status"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldStatus domain.EmployeeStatus `json:"old_status"`
	NewStatus domain.EmployeeStatus `json:"new_status"`
}

// AssignedPayload payload.
type AssignedPayload struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
}

// LocationUpdatedPayload payload.
type LocationUpdatedPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  *string `json:"location,omitempty"`
}
