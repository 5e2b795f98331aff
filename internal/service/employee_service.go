package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/field-tracker/internal/domain"
	"github.com/spec-kit/field-tracker/internal/events"
	"github.com/spec-kit/field-tracker/internal/store"
	apperrors "github.com/spec-kit/field-tracker/pkg/util"
)

// EmployeeService orchestrates employee mutations on top of the store:
// it owns the status-transition rules and publishes domain events. The
// store itself stays free of validation concerns.
type EmployeeService struct {
	store      store.Store
	dispatcher events.Dispatcher
}

// NewEmployeeService constructs the service.
func NewEmployeeService(st store.Store, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{store: st, dispatcher: dispatcher}
}

// List returns every employee in no guaranteed order.
func (s *EmployeeService) List(ctx context.Context) []domain.Employee {
	return s.store.AllEmployees()
}

// Get fetches one employee.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, ok := s.store.GetEmployee(id)
	if !ok {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	return emp, nil
}

// ListByStatus filters employees by exact status match. Unrecognized
// values yield an empty list rather than an error.
func (s *EmployeeService) ListByStatus(ctx context.Context, status domain.EmployeeStatus) []domain.Employee {
	return s.store.EmployeesByStatus(status)
}

// Create inserts a new employee record with server-assigned id and
// lastUpdate.
func (s *EmployeeService) Create(ctx context.Context, input store.NewEmployee) (*domain.Employee, error) {
	emp := s.store.CreateEmployee(input)
	s.publish(ctx, events.EventEmployeeCreated, emp.ID, events.EmployeeCreatedPayload{
		Name:   emp.Name,
		Status: emp.Status,
	})
	return emp, nil
}

// Update merges a partial update onto the record.
func (s *EmployeeService) Update(ctx context.Context, id int64, updates store.EmployeeUpdate) (*domain.Employee, error) {
	emp, ok := s.store.UpdateEmployee(id, updates)
	if !ok {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	s.publish(ctx, events.EventEmployeeUpdated, emp.ID, nil)
	return emp, nil
}

// Delete removes the record. The identifier is never reused.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if !s.store.DeleteEmployee(id) {
		return apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	s.publish(ctx, events.EventEmployeeDeleted, id, nil)
	return nil
}

// UpdateLocation stores new coordinates (and optionally the label).
func (s *EmployeeService) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64, location *string) (*domain.Employee, error) {
	emp, ok := s.store.UpdateEmployeeLocation(id, latitude, longitude, location)
	if !ok {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	s.publish(ctx, events.EventEmployeeLocationUpdated, emp.ID, events.LocationUpdatedPayload{
		Latitude:  latitude,
		Longitude: longitude,
		Location:  location,
	})
	return emp, nil
}

// Assign links the employee to a customer and forces status to busy.
func (s *EmployeeService) Assign(ctx context.Context, id int64, customerID, customerName string) (*domain.Employee, error) {
	busy := domain.StatusBusy
	emp, ok := s.store.UpdateEmployee(id, store.EmployeeUpdate{
		Status:       &busy,
		CustomerID:   &customerID,
		CustomerName: &customerName,
	})
	if !ok {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	s.publish(ctx, events.EventEmployeeAssigned, emp.ID, events.AssignedPayload{
		CustomerID:   customerID,
		CustomerName: customerName,
	})
	return emp, nil
}

// ChangeStatus moves the employee to the given status. Transitions
// away from busy clear the customer assignment; transitions into busy
// leave it untouched (only Assign sets customer fields).
func (s *EmployeeService) ChangeStatus(ctx context.Context, id int64, status domain.EmployeeStatus) (*domain.Employee, error) {
	previous, ok := s.store.GetEmployee(id)
	if !ok {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}

	updates := store.EmployeeUpdate{Status: &status}
	if status != domain.StatusBusy {
		updates.ClearCustomer = true
	}
	emp, ok := s.store.UpdateEmployee(id, updates)
	if !ok {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	s.publish(ctx, events.EventEmployeeStatusChanged, emp.ID, events.StatusChangedPayload{
		OldStatus: previous.Status,
		NewStatus: status,
	})
	return emp, nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, employeeID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employeeID,
		Timestamp:  time.Now(),
		Payload:    payload,
	})
}
