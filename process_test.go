package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Silu00/sales-dashboard/domain/models"
)

func TestProcessDataset(t *testing.T) {
	users := []models.User{
		testUser("u1", "Alice Brown", "1 Main St", "(555) 111-2222"),
		testUser("u2", "alice brown ", "9 Oak Ave", "555.111.2222"),
		testUser("u3", "Bob Gray", "3 Elm Rd", "999-000-1111"),
	}
	books := []models.Book{
		{ID: "1", Title: "One", Author: "A, B"},
		{ID: "2", Title: "Two", Author: "B, A"},
	}
	orders := []models.Order{
		testOrder("u1", "1", "50", "2", "2024-01-01 09:00:00"),
		testOrder("u2", "2", "100", "3", "2024-01-02T12:00:00"),
	}

	result := ProcessDataset(users, orders, books)

	assert.Equal(t, 2, result.UniqueUsers)
	assert.Equal(t, 1, result.UniqueAuthorSets)
	assert.Equal(t, "A, B", result.TopAuthor)
	assert.Equal(t, []string{"u1", "u2"}, result.TopBuyerIDs)
	assert.Equal(t, []models.DateRevenue{
		{Date: "2024-01-01", Revenue: 100},
		{Date: "2024-01-02", Revenue: 300},
	}, result.DailyRevenue)
	assert.Equal(t, []models.DateRevenue{
		{Date: "2024-01-02", Revenue: 300},
		{Date: "2024-01-01", Revenue: 100},
	}, result.TopDays)
}

func TestNormalizeOrdersUppercaseMeridiem(t *testing.T) {
	orders := normalizeOrders([]models.Order{
		testOrder("u1", "1", "100", "1", "2024-01-05 5 P.M."),
	})
	if assert.NotNil(t, orders[0].Date) {
		assert.Equal(t, 17, orders[0].Date.Hour())
	}
	// the order keeps its date, so its paid price stays in the rollup
	assert.Equal(t, []models.DateRevenue{
		{Date: "2024-01-05", Revenue: 100},
	}, dailyRevenue(orders))
}

func TestProcessDatasetEmpty(t *testing.T) {
	result := ProcessDataset(nil, nil, nil)
	assert.Equal(t, 0, result.UniqueUsers)
	assert.Equal(t, 0, result.UniqueAuthorSets)
	assert.Equal(t, noDataLabel, result.TopAuthor)
	assert.Empty(t, result.TopBuyerIDs)
	assert.Empty(t, result.DailyRevenue)
	assert.Empty(t, result.TopDays)
}

func TestProcessFolderStructuralError(t *testing.T) {
	_, err := processFolder("no-such-folder")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-folder")
}
