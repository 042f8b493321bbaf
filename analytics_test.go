package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetStatistics tests the GET /api/statistics endpoint
func TestGetStatistics(t *testing.T) {
	store := newMemoryStore(
		testTransaction(1, "Sold Item", 150.25, "Electronics", true, "2022-03-05"),
		testTransaction(2, "Unsold Item", 99.75, "Clothing", false, "2022-03-22"),
		testTransaction(3, "April Item", 500, "Home", true, "2022-04-01"),
	)

	t.Run("returns month-scoped statistics", func(t *testing.T) {
		resp := makeRequest(store, "/api/statistics?month=march")

		assertStatusCode(t, http.StatusOK, resp.Code)

		var stats Statistics
		require.NoError(t, parseJSONResponse(resp, &stats))
		assert.Equal(t, 250.00, stats.TotalSales)
		assert.Equal(t, int64(1), stats.SoldItems)
		assert.Equal(t, int64(1), stats.UnsoldItems)
	})

	t.Run("returns zeros for an empty month", func(t *testing.T) {
		resp := makeRequest(store, "/api/statistics?month=2022-09")

		assertStatusCode(t, http.StatusOK, resp.Code)

		var stats Statistics
		require.NoError(t, parseJSONResponse(resp, &stats))
		assert.Equal(t, Statistics{}, stats)
	})

	t.Run("rejects an invalid month selector", func(t *testing.T) {
		resp := makeRequest(store, "/api/statistics?month=13")

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestGetBarChart tests the GET /api/bar-chart endpoint
func TestGetBarChart(t *testing.T) {
	store := newMemoryStore(
		testTransaction(1, "Budget Item", 55, "A", true, "2022-03-02"),
		testTransaction(2, "Mid Item", 450, "A", false, "2022-03-12"),
		testTransaction(3, "Premium Item", 2500, "A", true, "2022-03-28"),
	)

	t.Run("returns all ten ranges in order", func(t *testing.T) {
		resp := makeRequest(store, "/api/bar-chart?month=march")

		assertStatusCode(t, http.StatusOK, resp.Code)

		var histogram []PriceRangeCount
		require.NoError(t, parseJSONResponse(resp, &histogram))
		require.Len(t, histogram, 10)

		labels := make([]string, len(histogram))
		for i, bucket := range histogram {
			labels[i] = bucket.Range
		}
		assert.Equal(t, []string{
			"0-100", "101-200", "201-300", "301-400", "401-500",
			"501-600", "601-700", "701-800", "801-900", "901-above",
		}, labels)

		byRange := map[string]int64{}
		for _, bucket := range histogram {
			byRange[bucket.Range] = bucket.Count
		}
		assert.Equal(t, int64(1), byRange["0-100"])
		assert.Equal(t, int64(1), byRange["401-500"])
		assert.Equal(t, int64(1), byRange["901-above"])
	})

	t.Run("keeps zero-count ranges for an empty month", func(t *testing.T) {
		resp := makeRequest(store, "/api/bar-chart?month=2022-11")

		assertStatusCode(t, http.StatusOK, resp.Code)

		var histogram []PriceRangeCount
		require.NoError(t, parseJSONResponse(resp, &histogram))
		require.Len(t, histogram, 10)
		for _, bucket := range histogram {
			assert.Equal(t, int64(0), bucket.Count, bucket.Range)
		}
	})

	t.Run("rejects an invalid month selector", func(t *testing.T) {
		resp := makeRequest(store, "/api/bar-chart?month=2022-00")

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestGetPieChart tests the GET /api/pie-chart endpoint
func TestGetPieChart(t *testing.T) {
	store := newMemoryStore(
		testTransaction(1, "A", 10, "Electronics", true, "2022-03-01"),
		testTransaction(2, "B", 20, "Electronics", false, "2022-03-05"),
		testTransaction(3, "C", 30, "Books", true, "2022-03-09"),
	)

	t.Run("returns observed categories with counts", func(t *testing.T) {
		resp := makeRequest(store, "/api/pie-chart?month=march")

		assertStatusCode(t, http.StatusOK, resp.Code)

		var distribution []CategoryCount
		require.NoError(t, parseJSONResponse(resp, &distribution))
		assert.Equal(t, []CategoryCount{
			{Category: "Books", Count: 1},
			{Category: "Electronics", Count: 2},
		}, distribution)
	})

	t.Run("returns an empty array for an empty month", func(t *testing.T) {
		resp := makeRequest(store, "/api/pie-chart?month=june")

		assertStatusCode(t, http.StatusOK, resp.Code)

		var distribution []CategoryCount
		require.NoError(t, parseJSONResponse(resp, &distribution))
		assert.Empty(t, distribution)
	})

	t.Run("rejects an invalid month selector", func(t *testing.T) {
		resp := makeRequest(store, "/api/pie-chart?month=xyz")

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}
