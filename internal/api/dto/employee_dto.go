package dto

import "time"

// CreateEmployeeRequest is the payload for POST /api/employees. Name
// and phone are required; status defaults to available when absent.
type CreateEmployeeRequest struct {
	Name            string   `json:"name" validate:"required"`
	Phone           string   `json:"phone" validate:"required"`
	Status          string   `json:"status" validate:"omitempty,oneof=available busy offline"`
	Latitude        *string  `json:"latitude"`
	Longitude       *string  `json:"longitude"`
	Location        *string  `json:"location"`
	RegionID        *string  `json:"regionId"`
	CityID          *string  `json:"cityId"`
	NeighborhoodID  *string  `json:"neighborhoodId"`
	CustomerID      *string  `json:"customerId"`
	CustomerName    *string  `json:"customerName"`
	Languages       []string `json:"languages"`
	TrainingCourses []string `json:"trainingCourses"`
}

// UpdateEmployeeRequest is the partial payload for PUT
// /api/employees/:id. Every field is optional; nil means untouched.
type UpdateEmployeeRequest struct {
	Name            *string  `json:"name"`
	Phone           *string  `json:"phone"`
	Status          *string  `json:"status" validate:"omitempty,oneof=available busy offline"`
	Latitude        *string  `json:"latitude"`
	Longitude       *string  `json:"longitude"`
	Location        *string  `json:"location"`
	RegionID        *string  `json:"regionId"`
	CityID          *string  `json:"cityId"`
	NeighborhoodID  *string  `json:"neighborhoodId"`
	CustomerID      *string  `json:"customerId"`
	CustomerName    *string  `json:"customerName"`
	Languages       []string `json:"languages"`
	TrainingCourses []string `json:"trainingCourses"`
}

// LocationUpdateRequest is the payload for the location endpoint.
// Coordinates arrive as numbers and are stored as decimal strings.
type LocationUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  *string `json:"location"`
}

// AssignRequest links an employee to a customer.
type AssignRequest struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

// StatusUpdateRequest changes only the availability state.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// EmployeeResponse is the wire shape of an employee record. Nullable
// fields serialize as explicit nulls, matching what map clients expect.
type EmployeeResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	Latitude        *string   `json:"latitude"`
	Longitude       *string   `json:"longitude"`
	Location        *string   `json:"location"`
	RegionID        *string   `json:"regionId"`
	CityID          *string   `json:"cityId"`
	NeighborhoodID  *string   `json:"neighborhoodId"`
	LastUpdate      time.Time `json:"lastUpdate"`
	CustomerID      *string   `json:"customerId"`
	CustomerName    *string   `json:"customerName"`
	Languages       []string  `json:"languages"`
	TrainingCourses []string  `json:"trainingCourses"`
}
