package product

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXRepository serves the catalog from the first sheet of an Excel
// workbook. The sheet is read once on construction and again on Reload.
type XLSXRepository struct {
	path  string
	cache *InMemoryRepository
}

func NewXLSXRepository(path string) (*XLSXRepository, error) {
	r := &XLSXRepository{path: path, cache: NewInMemoryRepository(nil)}
	if _, err := r.Reload(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *XLSXRepository) List(ctx context.Context) ([]Product, error) {
	return r.cache.List(ctx)
}

// Reload re-reads the workbook and returns the number of products loaded.
// On error the previously loaded catalog stays in place.
func (r *XLSXRepository) Reload(ctx context.Context) (int, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return 0, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	products, err := ParseXLSX(f)
	if err != nil {
		return 0, err
	}
	r.cache.Reset(products)
	return len(products), nil
}

// ParseXLSX reads products from the first sheet. The first row is a header
// naming the columns id, name, description, category and price in any order
// and case. Rows without a numeric id are skipped.
func ParseXLSX(src io.Reader) ([]Product, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return []Product{}, nil
	}

	columns := mapColumns(rows[0])
	idCol, ok := columns["id"]
	if !ok {
		return nil, fmt.Errorf("excel header has no id column")
	}
	nameCol, ok := columns["name"]
	if !ok {
		return nil, fmt.Errorf("excel header has no name column")
	}

	out := make([]Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, err := strconv.Atoi(cell(row, idCol))
		if err != nil {
			continue
		}
		p := Product{ID: id, Name: cell(row, nameCol)}
		if col, ok := columns["description"]; ok {
			p.Description = cell(row, col)
		}
		if col, ok := columns["category"]; ok {
			if c := cell(row, col); c != "" {
				p.Category = ptrString(c)
			}
		}
		if col, ok := columns["price"]; ok {
			if raw := strings.ReplaceAll(cell(row, col), ",", ""); raw != "" {
				price, err := decimal.NewFromString(raw)
				if err != nil {
					return nil, fmt.Errorf("product %d has invalid price %q: %w", id, raw, err)
				}
				p.Price = price
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch key {
		case "id", "productid", "product_id":
			key = "id"
		case "name", "productname", "product_name":
			key = "name"
		case "description", "desc", "product_desc":
			key = "description"
		case "category":
		case "price", "product_price":
			key = "price"
		default:
			continue
		}
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	return columns
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
