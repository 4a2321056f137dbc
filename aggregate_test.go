package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Silu00/sales-dashboard/domain/models"
)

func testOrder(userID, bookID, price, quantity, timestamp string) models.Order {
	return models.Order{
		UserID:       userID,
		BookID:       bookID,
		UnitPriceRaw: price,
		QuantityRaw:  quantity,
		TimestampRaw: timestamp,
	}
}

func TestDailyRevenueSeries(t *testing.T) {
	orders := normalizeOrders([]models.Order{
		testOrder("u1", "1", "50", "2", "2024-01-02T10:00:00"),
		testOrder("u1", "1", "25", "2", "2024-01-02 18:30:00"),
		testOrder("u2", "1", "100", "3", "2024-01-01"),
		testOrder("u2", "1", "100", "1", "when?"), // null date, excluded
	})
	series := dailyRevenue(orders)

	assert.Equal(t, []models.DateRevenue{
		{Date: "2024-01-01", Revenue: 300},
		{Date: "2024-01-02", Revenue: 150},
	}, series)

	// sum of the series equals the paid-price sum over dated orders
	var seriesSum, datedSum float64
	for _, day := range series {
		seriesSum += day.Revenue
	}
	for _, o := range orders {
		if o.Date != nil {
			datedSum += o.PaidPrice
		}
	}
	assert.InDelta(t, datedSum, seriesSum, 1e-9)
}

func TestTopDays(t *testing.T) {
	var series []models.DateRevenue
	for i := 1; i <= 7; i++ {
		series = append(series, models.DateRevenue{
			Date:    fmt.Sprintf("2024-01-%02d", i),
			Revenue: float64(i * 10),
		})
	}
	// tie with an earlier date: stable sort keeps the earlier one first
	series[0].Revenue = 70

	top := topDays(series, 5)
	assert.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Revenue, top[i].Revenue)
	}
	assert.Equal(t, "2024-01-01", top[0].Date)
	assert.Equal(t, "2024-01-07", top[1].Date)

	inSeries := map[string]bool{}
	for _, day := range series {
		inSeries[day.Date] = true
	}
	for _, day := range top {
		assert.True(t, inSeries[day.Date])
	}
}

func TestTopAuthor(t *testing.T) {
	books := normalizeBooks([]models.Book{
		{ID: "1", Author: "A, B"},
		{ID: "2", Author: "B, A"},
		{ID: "3", Author: "C"},
		{ID: "4", Author: "-"},
	})
	orders := normalizeOrders([]models.Order{
		testOrder("u1", "1", "10", "2", "2024-01-01"),
		testOrder("u1", "2", "10", "3", "2024-01-01"),
		testOrder("u2", "3", "10", "4", "2024-01-01"),
		testOrder("u2", "4", "10", "9", "2024-01-01"), // missing author, never counted
		testOrder("u2", "99", "10", "9", "2024-01-01"),
	})
	assert.Equal(t, "A, B", topAuthor(orders, books))
}

func TestTopAuthorNoData(t *testing.T) {
	books := normalizeBooks([]models.Book{{ID: "1", Author: "A"}})
	orders := normalizeOrders([]models.Order{
		testOrder("u1", "42", "10", "2", "2024-01-01"),
	})
	assert.Equal(t, noDataLabel, topAuthor(orders, books))
	assert.Equal(t, noDataLabel, topAuthor(nil, books))
}

func TestTopBuyerGroup(t *testing.T) {
	users := normalizeUsers([]models.User{
		testUser("u1", "John Doe", "1 Main St", "(555) 111-2222"),
		testUser("u2", "john doe", "2 Oak Ave", "555.111.2222"),
		testUser("u3", "Mary Sue", "3 Elm Rd", "999-000-1111"),
	})
	set := resolveUsers(users)
	orders := normalizeOrders([]models.Order{
		testOrder("u1", "1", "100", "1", "2024-01-01"),
		testOrder("u2", "1", "150", "2", "2024-01-02"),
		testOrder("u3", "1", "120", "1", "2024-01-03"),
		testOrder("ghost", "1", "9999", "1", "2024-01-04"), // unmapped, dropped
	})
	assert.Equal(t, []string{"u1", "u2"}, topBuyerGroup(orders, users, set))
}

func TestTopBuyerGroupEmpty(t *testing.T) {
	users := normalizeUsers([]models.User{
		testUser("u1", "John Doe", "1 Main St", "555"),
	})
	set := resolveUsers(users)
	orders := normalizeOrders([]models.Order{
		testOrder("ghost", "1", "100", "1", "2024-01-01"),
	})
	assert.Equal(t, []string{}, topBuyerGroup(orders, users, set))
}

func TestDedupBooks(t *testing.T) {
	books := dedupBooks([]models.Book{
		{ID: "1", Title: "first"},
		{ID: "1.0", Title: "same id, dropped"},
		{ID: "x", Title: "non-numeric, dropped"},
		{ID: "2", Title: "kept"},
	})
	assert.Len(t, books, 2)
	assert.Equal(t, "first", books[0].Title)
	assert.Equal(t, "kept", books[1].Title)
}

func TestNumericKey(t *testing.T) {
	a, ok := numericKey("1")
	assert.True(t, ok)
	b, ok := numericKey(" 1.0 ")
	assert.True(t, ok)
	assert.Equal(t, a, b)
	_, ok = numericKey("abc")
	assert.False(t, ok)
}
