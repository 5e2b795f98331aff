package store_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/field-tracker/internal/domain"
	"github.com/spec-kit/field-tracker/internal/store"
)

func TestSeed_PopulatesStore(t *testing.T) {
	t.Parallel()

	s := store.NewMemStore()
	s.Seed(rand.New(rand.NewSource(1)))

	employees := s.AllEmployees()
	// 8 fixed + 10 district + 32 Riyadh + at least 2 per seeded city.
	require.GreaterOrEqual(t, len(employees), 80)

	seen := make(map[int64]bool, len(employees))
	for _, emp := range employees {
		require.False(t, seen[emp.ID], "duplicate id %d", emp.ID)
		seen[emp.ID] = true

		require.NotEmpty(t, emp.Name)
		require.NotEmpty(t, emp.Phone)
		require.True(t, domain.ValidStatus(emp.Status), "status %q", emp.Status)
		require.NotEmpty(t, emp.Languages)
		require.NotEmpty(t, emp.TrainingCourses)

		require.NotNil(t, emp.Latitude)
		require.NotNil(t, emp.Longitude)
		_, err := strconv.ParseFloat(*emp.Latitude, 64)
		require.NoError(t, err)
		_, err = strconv.ParseFloat(*emp.Longitude, 64)
		require.NoError(t, err)

		if emp.Status == domain.StatusBusy {
			require.NotNil(t, emp.CustomerID)
			require.NotNil(t, emp.CustomerName)
		} else {
			require.Nil(t, emp.CustomerID)
			require.Nil(t, emp.CustomerName)
		}
	}
}

func TestSeed_CreatesAfterSeedContinueSequence(t *testing.T) {
	t.Parallel()

	s := store.NewMemStore()
	s.Seed(rand.New(rand.NewSource(42)))

	var maxID int64
	for _, emp := range s.AllEmployees() {
		if emp.ID > maxID {
			maxID = emp.ID
		}
	}

	emp := s.CreateEmployee(store.NewEmployee{Name: "Test", Phone: "0500000000"})
	require.Greater(t, emp.ID, maxID)
}

func TestSeed_CoversMultipleRegions(t *testing.T) {
	t.Parallel()

	s := store.NewMemStore()
	s.Seed(rand.New(rand.NewSource(7)))

	regions := make(map[string]bool)
	for _, emp := range s.AllEmployees() {
		require.NotNil(t, emp.RegionID)
		regions[*emp.RegionID] = true
	}
	require.True(t, regions["riyadh"])
	require.True(t, regions["makkah"])
	require.True(t, regions["eastern"])
	require.GreaterOrEqual(t, len(regions), 10)
}
