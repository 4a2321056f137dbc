// aggregate.go
package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Silu00/sales-dashboard/domain/models"
)

const noDataLabel = "No Data"

// numericKey normalizes a numeric identifier so that "1" and "1.0" join.
func numericKey(s string) (string, bool) {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(val, 'g', -1, 64), true
}

// dedupBooks drops records with a non-numeric id and keeps the first
// occurrence of every id.
func dedupBooks(books []models.Book) []models.Book {
	seen := map[string]bool{}
	result := make([]models.Book, 0, len(books))
	for _, b := range books {
		key, ok := numericKey(b.ID)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, b)
	}
	return result
}

// dailyRevenue суммирует paid price по календарным дням; ряд отсортирован
// по возрастанию даты, по одной строке на день.
func dailyRevenue(orders []models.Order) []models.DateRevenue {
	totals := map[string]float64{}
	var days []string
	for _, o := range orders {
		if o.Date == nil {
			continue
		}
		day := fmt.Sprintf("%04d-%02d-%02d", o.Year, o.Month, o.Day)
		if _, ok := totals[day]; !ok {
			days = append(days, day)
		}
		totals[day] += o.PaidPrice
	}
	sort.Strings(days) // ISO dates sort chronologically
	series := make([]models.DateRevenue, 0, len(days))
	for _, day := range days {
		series = append(series, models.DateRevenue{Date: day, Revenue: totals[day]})
	}
	return series
}

// topDays returns up to n rows with the highest revenue. The stable sort
// keeps the earlier date first on revenue ties.
func topDays(series []models.DateRevenue, n int) []models.DateRevenue {
	top := make([]models.DateRevenue, len(series))
	copy(top, series)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Revenue > top[j].Revenue })
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// topAuthor joins orders to the catalog and picks the author set with the
// largest summed quantity, first-seen order breaking ties.
func topAuthor(orders []models.Order, books []models.Book) string {
	byID := make(map[string]models.Book, len(books))
	for _, b := range books {
		if key, ok := numericKey(b.ID); ok {
			byID[key] = b
		}
	}
	totals := map[string]float64{}
	var keys []string
	for _, o := range orders {
		bookKey, ok := numericKey(o.BookID)
		if !ok {
			continue
		}
		book, ok := byID[bookKey]
		if !ok || book.AuthorSet == nil {
			continue
		}
		key := authorSetKey(book.AuthorSet)
		if _, seen := totals[key]; !seen {
			keys = append(keys, key)
		}
		totals[key] += o.Quantity
	}
	if len(keys) == 0 {
		return noDataLabel
	}
	best := keys[0]
	for _, key := range keys[1:] {
		if totals[key] > totals[best] {
			best = key
		}
	}
	return best
}

// topBuyerGroup sums paid price per customer group and returns every raw id
// belonging to the top spending group, in input order. Orders whose customer
// is unknown are dropped; an empty slice means nothing was attributable.
func topBuyerGroup(orders []models.Order, users []models.User, set *DisjointSet) []string {
	lookup := groupLookup(users, set)
	totals := map[int]float64{}
	var groupOrder []int
	for _, o := range orders {
		groupID, ok := lookup[o.UserID]
		if !ok {
			continue
		}
		if _, seen := totals[groupID]; !seen {
			groupOrder = append(groupOrder, groupID)
		}
		totals[groupID] += o.PaidPrice
	}
	if len(groupOrder) == 0 {
		return []string{}
	}
	best := groupOrder[0]
	for _, groupID := range groupOrder[1:] {
		if totals[groupID] > totals[best] {
			best = groupID
		}
	}
	ids := []string{}
	for i, u := range users {
		if set.Find(i) == best {
			ids = append(ids, u.ID)
		}
	}
	return ids
}
