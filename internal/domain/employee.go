package domain

import "time"

// EmployeeStatus enumerates availability states for field staff.
type EmployeeStatus string

const (
	StatusAvailable EmployeeStatus = "available"
	StatusBusy      EmployeeStatus = "busy"
	StatusOffline   EmployeeStatus = "offline"
)

// ValidStatus reports whether s is one of the known availability states.
func ValidStatus(s EmployeeStatus) bool {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return true
	}
	return false
}

// Employee models a field worker tracked by position and availability.
// Latitude and longitude are stored as decimal strings. Customer fields
// are only meaningful while the employee is busy.
type Employee struct {
	ID              int64
	Name            string
	Phone           string
	Status          EmployeeStatus
	Latitude        *string
	Longitude       *string
	Location        *string
	RegionID        *string
	CityID          *string
	NeighborhoodID  *string
	LastUpdate      time.Time
	CustomerID      *string
	CustomerName    *string
	Languages       []string
	TrainingCourses []string
}
