// process.go
package main

import (
	"strings"

	"github.com/Silu00/sales-dashboard/domain/models"
)

// DatasetReport is the per-folder outcome: either a result or an error
// scoped to that dataset alone.
type DatasetReport struct {
	Name   string
	Result models.AggregateResult
	Err    error
}

func normalizeUsers(users []models.User) []models.User {
	users = dropExactDuplicates(users)
	for i := range users {
		u := &users[i]
		u.Phone = cleanPhone(u.Phone)
		u.NameClean = strings.ToLower(strings.TrimSpace(u.Name))
		u.AddressClean = strings.ToLower(strings.TrimSpace(u.Address))
		u.PhoneClean = strings.TrimSpace(u.Phone)
	}
	return users
}

func normalizeOrders(orders []models.Order) []models.Order {
	for i := range orders {
		o := &orders[i]
		o.UnitPrice = cleanPrice(o.UnitPriceRaw)
		o.Quantity = cleanQuantity(o.QuantityRaw)
		o.PaidPrice = o.UnitPrice * o.Quantity
		o.TimestampRaw = fixTimestamp(o.TimestampRaw)
		if o.TimestampRaw == "" {
			continue
		}
		t, err := tryParseDateTime(o.TimestampRaw)
		if err != nil {
			continue // unparseable timestamp degrades to a null date
		}
		o.Date = &t
		o.Year, o.Month, o.Day = t.Year(), int(t.Month()), t.Day()
	}
	return orders
}

func normalizeBooks(books []models.Book) []models.Book {
	for i := range books {
		b := &books[i]
		b.Title = cleanText(b.Title)
		b.Author = cleanText(b.Author)
		b.Genre = cleanText(b.Genre)
		b.Publisher = cleanText(b.Publisher)
		b.AuthorSet = authorSet(b.Author)
	}
	return dedupBooks(books)
}

// ProcessDataset runs the full pipeline over one already-parsed dataset
// snapshot: normalize, resolve customer identities, aggregate, assemble
// the metrics contract. Pure and synchronous; every run owns its own
// disjoint-set and intermediate tables.
func ProcessDataset(users []models.User, orders []models.Order, books []models.Book) models.AggregateResult {
	users = normalizeUsers(users)
	orders = normalizeOrders(orders)
	books = normalizeBooks(books)

	set := resolveUsers(users)
	series := dailyRevenue(orders)

	return models.AggregateResult{
		UniqueUsers:      set.Roots(),
		UniqueAuthorSets: uniqueAuthorSets(books),
		TopAuthor:        topAuthor(orders, books),
		TopDays:          topDays(series, 5),
		TopBuyerIDs:      topBuyerGroup(orders, users, set),
		DailyRevenue:     series,
	}
}

// processFolder reads one dataset folder and runs the pipeline. A read
// failure aborts only this dataset; other folders proceed on their own.
func processFolder(dir string) (models.AggregateResult, error) {
	users, orders, books, err := readDataset(dir)
	if err != nil {
		return models.AggregateResult{}, err
	}
	return ProcessDataset(users, orders, books), nil
}
