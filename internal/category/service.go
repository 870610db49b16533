package category

import (
	"context"
	"fmt"
	"slices"

	"github.com/wichananm65/sports-store/internal/product"
)

// ProductLister is the single capability the menu needs from a catalog.
type ProductLister interface {
	List(ctx context.Context) ([]product.Product, error)
}

// Service provides business logic for categories.
type Service struct {
	products ProductLister
}

func NewService(products ProductLister) *Service {
	return &Service{products: products}
}

// Menu returns the distinct categories of the whole catalog in ascending
// byte order. Products without a category are ignored.
func (s *Service) Menu(ctx context.Context, selected *string) (Menu, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return Menu{}, fmt.Errorf("list products: %w", err)
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range all {
		if p.Category == nil {
			continue
		}
		if _, ok := seen[*p.Category]; ok {
			continue
		}
		seen[*p.Category] = struct{}{}
		categories = append(categories, *p.Category)
	}
	slices.Sort(categories)

	return Menu{Categories: categories, SelectedCategory: selected}, nil
}
