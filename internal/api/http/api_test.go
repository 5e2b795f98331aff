package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/field-tracker/internal/api/dto"
	httptransport "github.com/spec-kit/field-tracker/internal/api/http"
	"github.com/spec-kit/field-tracker/internal/api/http/handlers"
	"github.com/spec-kit/field-tracker/internal/auth"
	"github.com/spec-kit/field-tracker/internal/config"
	"github.com/spec-kit/field-tracker/internal/events"
	"github.com/spec-kit/field-tracker/internal/observability"
	"github.com/spec-kit/field-tracker/internal/service"
	"github.com/spec-kit/field-tracker/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{}
	cfg.App.Name = "field-dashboard-service"
	cfg.App.Version = "test"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	memStore := store.NewMemStore()
	dispatcher := events.NewInMemoryDispatcher()

	employeeService := service.NewEmployeeService(memStore, dispatcher)
	authService := service.NewAuthService(cfg, memStore)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, memStore, metrics),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Locations:      handlers.NewLocationsHandler(),
		Users:          handlers.NewUsersHandler(authService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager(), memStore),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *nethttp.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEmployee(t *testing.T, resp *nethttp.Response) dto.EmployeeResponse {
	t.Helper()
	var emp dto.EmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&emp))
	return emp
}

func decodeEmployeeList(t *testing.T, resp *nethttp.Response) []dto.EmployeeResponse {
	t.Helper()
	var list []dto.EmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}

func TestEmployeeLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	// Create with minimal fields; defaults are applied.
	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{
		"name":  "Test",
		"phone": "0500000000",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decodeEmployee(t, resp)
	require.Equal(t, "available", created.Status)
	require.NotNil(t, created.Languages)
	require.Empty(t, created.Languages)
	require.Empty(t, created.TrainingCourses)
	require.Nil(t, created.CustomerID)
	require.False(t, created.LastUpdate.IsZero())

	// Bare busy via the status endpoint is allowed and does not invent
	// an assignment.
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d/status", created.ID), fiber.Map{"status": "busy"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	busy := decodeEmployee(t, resp)
	require.Equal(t, "busy", busy.Status)
	require.Nil(t, busy.CustomerID)
	require.Nil(t, busy.CustomerName)

	// Assign sets customer fields and forces busy.
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d/assign", created.ID), fiber.Map{
		"customerId":   "CUST001",
		"customerName": "Acme",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assigned := decodeEmployee(t, resp)
	require.Equal(t, "busy", assigned.Status)
	require.Equal(t, "CUST001", *assigned.CustomerID)
	require.Equal(t, "Acme", *assigned.CustomerName)

	// Leaving busy clears the assignment.
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d/status", created.ID), fiber.Map{"status": "available"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	cleared := decodeEmployee(t, resp)
	require.Equal(t, "available", cleared.Status)
	require.Nil(t, cleared.CustomerID)
	require.Nil(t, cleared.CustomerName)

	// Delete, then the record is gone.
	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/employees/%d", created.ID), nil)
	require.Equal(t, nethttp.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/employees/%d", created.ID), nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/employees/%d", created.ID), nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestCreateEmployeeValidation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{"name": "NoPhone"})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Errors []dto.FieldError `json:"errors"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	require.Len(t, body.Error.Details.Errors, 1)
	require.Equal(t, "phone", body.Error.Details.Errors[0].Field)

	resp = doJSON(t, app, "POST", "/api/employees", fiber.Map{
		"name":   "BadStatus",
		"phone":  "0500000000",
		"status": "on-break",
	})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{"name": "Before", "phone": "0500000000"})
	created := decodeEmployee(t, resp)

	// The identifier in the payload is ignored.
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d", created.ID), fiber.Map{
		"id":       9999,
		"name":     "After",
		"regionId": "riyadh",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	updated := decodeEmployee(t, resp)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "After", updated.Name)
	require.Equal(t, "0500000000", updated.Phone)
	require.Equal(t, "riyadh", *updated.RegionID)

	resp = doJSON(t, app, "PUT", "/api/employees/9999", fiber.Map{"name": "Ghost"})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d", created.ID), fiber.Map{"status": "vacation"})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestListByStatus(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	for _, spec := range []fiber.Map{
		{"name": "A", "phone": "1", "status": "available"},
		{"name": "B", "phone": "2", "status": "busy"},
		{"name": "C", "phone": "3", "status": "offline"},
		{"name": "D", "phone": "4", "status": "busy"},
	} {
		resp := doJSON(t, app, "POST", "/api/employees", spec)
		require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, "GET", "/api/employees", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Len(t, decodeEmployeeList(t, resp), 4)

	resp = doJSON(t, app, "GET", "/api/employees/status/busy", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	busy := decodeEmployeeList(t, resp)
	require.Len(t, busy, 2)
	for _, emp := range busy {
		require.Equal(t, "busy", emp.Status)
	}

	// Unknown status is not an error, just empty.
	resp = doJSON(t, app, "GET", "/api/employees/status/on-break", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Empty(t, decodeEmployeeList(t, resp))
}

func TestUpdateLocation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{"name": "Test", "phone": "0500000000"})
	created := decodeEmployee(t, resp)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d/location", created.ID), fiber.Map{
		"latitude":  24.7136,
		"longitude": 46.6753,
		"location":  "حي العليا",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	updated := decodeEmployee(t, resp)
	require.Equal(t, "24.7136", *updated.Latitude)
	require.Equal(t, "46.6753", *updated.Longitude)
	require.Equal(t, "حي العليا", *updated.Location)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d/location", created.ID), fiber.Map{
		"latitude": 24.7136,
	})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/employees/9999/location", fiber.Map{
		"latitude":  24.7136,
		"longitude": 46.6753,
	})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestAssignValidation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{"name": "Test", "phone": "0500000000"})
	created := decodeEmployee(t, resp)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d/assign", created.ID), fiber.Map{
		"customerId": "CUST001",
	})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/employees/9999/assign", fiber.Map{
		"customerId":   "CUST001",
		"customerName": "Acme",
	})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestStatusValidation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/employees", fiber.Map{"name": "Test", "phone": "0500000000"})
	created := decodeEmployee(t, resp)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/employees/%d/status", created.ID), fiber.Map{"status": "on-break"})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/employees/9999/status", fiber.Map{"status": "offline"})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/employees/abc", nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestLocationsEndpoints(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/locations/regions", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var regions []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&regions))
	require.Len(t, regions, 4)

	resp = doJSON(t, app, "GET", "/api/locations/regions/riyadh/cities", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var cities []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cities))
	require.Len(t, cities, 3)

	resp = doJSON(t, app, "GET", "/api/locations/cities/riyadh-city/neighborhoods", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var hoods []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hoods))
	require.Len(t, hoods, 14)

	resp = doJSON(t, app, "GET", "/api/locations/regions/atlantis/cities", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var empty []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	require.Empty(t, empty)
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", fiber.Map{
		"username": "dispatcher",
		"password": "secret",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	var registered struct {
		Data struct {
			User dto.UserResponse `json:"user"`
			Auth dto.AuthResponse `json:"auth"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&registered))
	require.Equal(t, "dispatcher", registered.Data.User.Username)
	require.NotEmpty(t, registered.Data.Auth.Token)

	resp = doJSON(t, app, "POST", "/api/auth/login", fiber.Map{
		"username": "dispatcher",
		"password": "wrong",
	})
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/login", fiber.Map{
		"username": "dispatcher",
		"password": "secret",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var loggedIn struct {
		Data struct {
			Auth dto.AuthResponse `json:"auth"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loggedIn))

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loggedIn.Data.Auth.Token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, meResp.StatusCode)

	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	meResp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusUnauthorized, meResp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/health/live", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/health/ready", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/health/stats", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
}
