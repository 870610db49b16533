package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// PostgresRepository reads the catalog from the `product` table.
type PostgresRepository struct {
	db *sql.DB
}

const listProductsQuery = `
	SELECT product_id, product_name, product_desc, category, product_price
	FROM product
	ORDER BY product_id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var desc sql.NullString
	var category sql.NullString
	var price decimal.NullDecimal

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&desc,
		&category,
		&price,
	); err != nil {
		return Product{}, err
	}

	if desc.Valid {
		p.Description = desc.String
	}
	if category.Valid {
		p.Category = &category.String
	}
	if price.Valid {
		p.Price = price.Decimal
	}
	return p, nil
}
