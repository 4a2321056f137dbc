package models

import "time"

// User — строка users.csv. Поля *Clean заполняются нормализатором и
// служат ключами блокировки при разрешении дубликатов.
type User struct {
	ID      string
	Name    string
	Address string
	Phone   string // digits only after cleaning

	NameClean    string
	AddressClean string
	PhoneClean   string
}

// Order — строка orders.parquet. Raw поля приходят текстом как есть,
// типизированные значения заполняет нормализатор.
type Order struct {
	ID           string
	UserID       string
	BookID       string
	UnitPriceRaw string
	QuantityRaw  string
	TimestampRaw string

	UnitPrice float64
	Quantity  float64
	PaidPrice float64 // UnitPrice * Quantity

	// Date is nil when the timestamp could not be parsed; such orders are
	// excluded from date-keyed aggregates. Year/Month/Day stay zero then.
	Date  *time.Time
	Year  int
	Month int
	Day   int
}

// Book — запись books.yaml после чистки текстовых полей.
type Book struct {
	ID        string
	Title     string
	Author    string
	Genre     string
	Publisher string

	// AuthorSet is the sorted order-independent author list. nil means the
	// author field is missing; an empty non-nil slice is a valid identity.
	AuthorSet []string
}

type DateRevenue struct {
	Date    string // ISO calendar date, YYYY-MM-DD
	Revenue float64
}

// AggregateResult is the full metrics contract handed to presentation.
// Plain value, no methods: presentation must not re-derive anything.
type AggregateResult struct {
	UniqueUsers      int
	UniqueAuthorSets int
	TopAuthor        string
	TopDays          []DateRevenue // up to 5 rows, revenue descending
	TopBuyerIDs      []string      // raw ids of the top spending group
	DailyRevenue     []DateRevenue // full series, chronologically ascending
}
