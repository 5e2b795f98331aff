package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/spec-kit/field-tracker/internal/domain"
)

// NewEmployee carries the fields accepted when creating an employee.
// Identifier and last-update are always server-assigned.
type NewEmployee struct {
	Name            string
	Phone           string
	Status          domain.EmployeeStatus
	Latitude        *string
	Longitude       *string
	Location        *string
	RegionID        *string
	CityID          *string
	NeighborhoodID  *string
	CustomerID      *string
	CustomerName    *string
	Languages       []string
	TrainingCourses []string
}

// EmployeeUpdate describes a partial update. Nil fields are left
// untouched. ClearCustomer resets customerId/customerName to null and
// takes precedence over the pointer fields.
type EmployeeUpdate struct {
	Name            *string
	Phone           *string
	Status          *domain.EmployeeStatus
	Latitude        *string
	Longitude       *string
	Location        *string
	RegionID        *string
	CityID          *string
	NeighborhoodID  *string
	CustomerID      *string
	CustomerName    *string
	Languages       []string
	TrainingCourses []string
	ClearCustomer   bool
}

// Store defines keyed access to dashboard records. Absence is signaled
// by the boolean result, never by an error.
type Store interface {
	CreateEmployee(input NewEmployee) *domain.Employee
	GetEmployee(id int64) (*domain.Employee, bool)
	AllEmployees() []domain.Employee
	EmployeesByStatus(status domain.EmployeeStatus) []domain.Employee
	UpdateEmployee(id int64, updates EmployeeUpdate) (*domain.Employee, bool)
	UpdateEmployeeLocation(id int64, latitude, longitude float64, location *string) (*domain.Employee, bool)
	DeleteEmployee(id int64) bool

	CreateUser(username, password string) *domain.User
	GetUser(id int64) (*domain.User, bool)
	GetUserByUsername(username string) (*domain.User, bool)
}

// MemStore keeps all records in process memory. Identifiers are
// assigned sequentially and never reused within a process lifetime.
type MemStore struct {
	mu             sync.RWMutex
	employees      map[int64]domain.Employee
	users          map[int64]domain.User
	nextEmployeeID int64
	nextUserID     int64
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		employees:      make(map[int64]domain.Employee),
		users:          make(map[int64]domain.User),
		nextEmployeeID: 1,
		nextUserID:     1,
	}
}

// CreateEmployee inserts a record with the next identifier, defaulting
// status to available and the string sets to empty. Never fails for
// well-formed input.
func (s *MemStore) CreateEmployee(input NewEmployee) *domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp := domain.Employee{
		ID:              s.nextEmployeeID,
		Name:            input.Name,
		Phone:           input.Phone,
		Status:          input.Status,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Location:        input.Location,
		RegionID:        input.RegionID,
		CityID:          input.CityID,
		NeighborhoodID:  input.NeighborhoodID,
		LastUpdate:      time.Now(),
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		Languages:       input.Languages,
		TrainingCourses: input.TrainingCourses,
	}
	if emp.Status == "" {
		emp.Status = domain.StatusAvailable
	}
	if emp.Languages == nil {
		emp.Languages = []string{}
	}
	if emp.TrainingCourses == nil {
		emp.TrainingCourses = []string{}
	}

	s.nextEmployeeID++
	s.employees[emp.ID] = emp
	return &emp
}

// GetEmployee returns the record for id, or false when absent.
func (s *MemStore) GetEmployee(id int64) (*domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[id]
	if !ok {
		return nil, false
	}
	return &emp, true
}

// AllEmployees returns every record in no guaranteed order.
func (s *MemStore) AllEmployees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		list = append(list, emp)
	}
	return list
}

// EmployeesByStatus filters by exact status match. An unrecognized
// status simply yields an empty result.
func (s *MemStore) EmployeesByStatus(status domain.EmployeeStatus) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Employee, 0)
	for _, emp := range s.employees {
		if emp.Status == status {
			list = append(list, emp)
		}
	}
	return list
}

// UpdateEmployee merges non-nil fields onto the stored record. The
// identifier is preserved regardless of input and lastUpdate is
// refreshed.
func (s *MemStore) UpdateEmployee(id int64, updates EmployeeUpdate) (*domain.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[id]
	if !ok {
		return nil, false
	}

	if updates.Name != nil {
		emp.Name = *updates.Name
	}
	if updates.Phone != nil {
		emp.Phone = *updates.Phone
	}
	if updates.Status != nil {
		emp.Status = *updates.Status
	}
	if updates.Latitude != nil {
		emp.Latitude = updates.Latitude
	}
	if updates.Longitude != nil {
		emp.Longitude = updates.Longitude
	}
	if updates.Location != nil {
		emp.Location = updates.Location
	}
	if updates.RegionID != nil {
		emp.RegionID = updates.RegionID
	}
	if updates.CityID != nil {
		emp.CityID = updates.CityID
	}
	if updates.NeighborhoodID != nil {
		emp.NeighborhoodID = updates.NeighborhoodID
	}
	if updates.CustomerID != nil {
		emp.CustomerID = updates.CustomerID
	}
	if updates.CustomerName != nil {
		emp.CustomerName = updates.CustomerName
	}
	if updates.Languages != nil {
		emp.Languages = updates.Languages
	}
	if updates.TrainingCourses != nil {
		emp.TrainingCourses = updates.TrainingCourses
	}
	if updates.ClearCustomer {
		emp.CustomerID = nil
		emp.CustomerName = nil
	}

	emp.ID = id
	emp.LastUpdate = time.Now()
	s.employees[id] = emp
	return &emp, true
}

// UpdateEmployeeLocation sets the coordinates as decimal strings and
// optionally the neighborhood label, refreshing lastUpdate.
func (s *MemStore) UpdateEmployeeLocation(id int64, latitude, longitude float64, location *string) (*domain.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[id]
	if !ok {
		return nil, false
	}

	lat := strconv.FormatFloat(latitude, 'f', -1, 64)
	lng := strconv.FormatFloat(longitude, 'f', -1, 64)
	emp.Latitude = &lat
	emp.Longitude = &lng
	if location != nil {
		emp.Location = location
	}
	emp.LastUpdate = time.Now()
	s.employees[id] = emp
	return &emp, true
}

// DeleteEmployee removes the record, reporting whether it existed.
// The identifier is not reused.
func (s *MemStore) DeleteEmployee(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return false
	}
	delete(s.employees, id)
	return true
}

// CreateUser inserts an account with the next identifier. Username
// uniqueness is not enforced at this layer.
func (s *MemStore) CreateUser(username, password string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{
		ID:       s.nextUserID,
		Username: username,
		Password: password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user
}

// GetUser returns the account for id, or false when absent.
func (s *MemStore) GetUser(id int64) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return &user, true
}

// GetUserByUsername scans for an exact username match.
func (s *MemStore) GetUserByUsername(username string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, true
		}
	}
	return nil, false
}
