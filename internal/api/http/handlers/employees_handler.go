package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-tracker/internal/api/dto"
	"github.com/spec-kit/field-tracker/internal/domain"
	"github.com/spec-kit/field-tracker/internal/service"
	"github.com/spec-kit/field-tracker/internal/store"
	apperrors "github.com/spec-kit/field-tracker/pkg/util"
)

// EmployeesHandler exposes the employee CRUD and transition endpoints.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	list := h.employees.List(c.Context())
	return c.JSON(employeeListResponse(list))
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}
	emp, err := h.employees.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	emp, err := h.employees.Create(c.Context(), store.NewEmployee{
		Name:            req.Name,
		Phone:           req.Phone,
		Status:          domain.EmployeeStatus(req.Status),
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Location:        req.Location,
		RegionID:        req.RegionID,
		CityID:          req.CityID,
		NeighborhoodID:  req.NeighborhoodID,
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		Languages:       req.Languages,
		TrainingCourses: req.TrainingCourses,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(employeeResponse(emp))
}

// Update handles PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	updates := store.EmployeeUpdate{
		Name:            req.Name,
		Phone:           req.Phone,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Location:        req.Location,
		RegionID:        req.RegionID,
		CityID:          req.CityID,
		NeighborhoodID:  req.NeighborhoodID,
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		Languages:       req.Languages,
		TrainingCourses: req.TrainingCourses,
	}
	if req.Status != nil {
		status := domain.EmployeeStatus(*req.Status)
		updates.Status = &status
	}

	emp, err := h.employees.Update(c.Context(), id, updates)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListByStatus handles GET /api/employees/status/:status. The status
// is taken verbatim; unknown values yield an empty list.
func (h *EmployeesHandler) ListByStatus(c *fiber.Ctx) error {
	status := domain.EmployeeStatus(c.Params("status"))
	list := h.employees.ListByStatus(c.Context(), status)
	return c.JSON(employeeListResponse(list))
}

// UpdateLocation handles PUT /api/employees/:id/location.
func (h *EmployeesHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}
	var req dto.LocationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Latitude == 0 || req.Longitude == 0 {
		return fiber.NewError(http.StatusBadRequest, "latitude and longitude are required")
	}

	emp, err := h.employees.UpdateLocation(c.Context(), id, req.Latitude, req.Longitude, req.Location)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Assign handles PUT /api/employees/:id/assign.
func (h *EmployeesHandler) Assign(c *fiber.Ctx) error {
	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CustomerID == "" || req.CustomerName == "" {
		return fiber.NewError(http.StatusBadRequest, "customer id and name are required")
	}

	emp, err := h.employees.Assign(c.Context(), id, req.CustomerID, req.CustomerName)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// UpdateStatus handles PUT /api/employees/:id/status.
func (h *EmployeesHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	status := domain.EmployeeStatus(req.Status)
	if !domain.ValidStatus(status) {
		return fiber.NewError(http.StatusBadRequest, "invalid status")
	}

	emp, err := h.employees.ChangeStatus(c.Context(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// parseEmployeeID reads the :id path parameter. A value that is not an
// integer can never match a record, so it surfaces as not found.
func parseEmployeeID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFound("employee", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:              emp.ID,
		Name:            emp.Name,
		Phone:           emp.Phone,
		Status:          string(emp.Status),
		Latitude:        emp.Latitude,
		Longitude:       emp.Longitude,
		Location:        emp.Location,
		RegionID:        emp.RegionID,
		CityID:          emp.CityID,
		NeighborhoodID:  emp.NeighborhoodID,
		LastUpdate:      emp.LastUpdate,
		CustomerID:      emp.CustomerID,
		CustomerName:    emp.CustomerName,
		Languages:       emp.Languages,
		TrainingCourses: emp.TrainingCourses,
	}
}

func employeeListResponse(list []domain.Employee) []dto.EmployeeResponse {
	resp := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, employeeResponse(&list[i]))
	}
	return resp
}
