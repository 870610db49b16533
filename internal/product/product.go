package product

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/sports-store/internal/paging"
)

// Product represents a catalog item and maps to the `public.product` table.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID          int             `json:"productId"`
	Name        string          `json:"productName"`
	Description string          `json:"productDesc"`
	Category    *string         `json:"category,omitempty"`
	Price       decimal.Decimal `json:"productPrice"`
}

// ListResult is one page of the catalog listing.
type ListResult struct {
	Products        []Product   `json:"products"`
	PagingInfo      paging.Info `json:"pagingInfo"`
	CurrentCategory *string     `json:"currentCategory"`
}

func ptrString(s string) *string { return &s }
