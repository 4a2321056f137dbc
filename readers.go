// readers.go
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/Silu00/sales-dashboard/domain/models"
)

// readDataset loads the three sources of one dataset folder. Any failure
// here is structural and is reported for this dataset only; the caller
// keeps processing the other folders.
func readDataset(dir string) ([]models.User, []models.Order, []models.Book, error) {
	users, err := readUsersCSV(filepath.Join(dir, "users.csv"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dataset %s: users: %w", dir, err)
	}
	orders, err := readOrdersParquet(filepath.Join(dir, "orders.parquet"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dataset %s: orders: %w", dir, err)
	}
	books, err := readBooksYAML(filepath.Join(dir, "books.yaml"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dataset %s: books: %w", dir, err)
	}
	return users, orders, books, nil
}

func readUsersCSV(path string) ([]models.User, error) {
	path, err := resolveSourcePath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := map[string]int{}
	for i, header := range headers {
		idx[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{"id", "name", "address", "phone"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("required column %q missing", required)
		}
	}

	var users []models.User
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		field := func(name string) string {
			if i := idx[name]; i < len(row) {
				return row[i]
			}
			return ""
		}
		users = append(users, models.User{
			ID:      field("id"),
			Name:    field("name"),
			Address: field("address"),
			Phone:   field("phone"),
		})
	}
	return users, nil
}

var orderParquetColumns = []string{"id", "user_id", "book_id", "unit_price", "quantity", "timestamp"}

// readOrdersParquet scans the order file column-by-column by leaf index, so
// the physical column types do not matter: every value is carried as text
// and handed to the normalizer.
func readOrdersParquet(path string) ([]models.Order, error) {
	path, err := resolveSourcePath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	names := map[int]string{}
	seen := map[string]bool{}
	for i, field := range pf.Schema().Fields() {
		name := strings.ToLower(field.Name())
		names[i] = name
		seen[name] = true
	}
	for _, required := range orderParquetColumns {
		if !seen[required] {
			return nil, fmt.Errorf("required column %q missing", required)
		}
	}

	var orders []models.Order
	buf := make([]parquet.Row, 256)
	for _, rowGroup := range pf.RowGroups() {
		rows := rowGroup.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				var o models.Order
				for _, value := range row {
					if value.IsNull() {
						continue
					}
					switch names[value.Column()] {
					case "id":
						o.ID = value.String()
					case "user_id":
						o.UserID = value.String()
					case "book_id":
						o.BookID = value.String()
					case "unit_price":
						o.UnitPriceRaw = value.String()
					case "quantity":
						o.QuantityRaw = value.String()
					case "timestamp":
						o.TimestampRaw = value.String()
					}
				}
				orders = append(orders, o)
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				rows.Close()
				return nil, err
			}
		}
		if err := rows.Close(); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// readBooksYAML decodes the catalog list. Source keys sometimes keep a
// stray trailing colon, it is stripped before mapping.
func readBooksYAML(path string) ([]models.Book, error) {
	path, err := resolveSourcePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	books := make([]models.Book, 0, len(raw))
	for _, entry := range raw {
		fields := map[string]string{}
		for key, value := range entry {
			key = strings.TrimSuffix(strings.TrimSpace(key), ":")
			if value == nil {
				fields[key] = ""
				continue
			}
			fields[key] = fmt.Sprint(value)
		}
		books = append(books, models.Book{
			ID:        fields["id"],
			Title:     fields["title"],
			Author:    fields["author"],
			Genre:     fields["genre"],
			Publisher: fields["publisher"],
		})
	}
	return books, nil
}
