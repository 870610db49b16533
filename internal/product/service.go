package product

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/wichananm65/sports-store/internal/paging"
)

// DefaultPageSize is used when the service is built with a non-positive size.
const DefaultPageSize = 4

// Service implements the catalog listing.
type Service struct {
	repo     Repository
	pageSize int
}

func NewService(repo Repository, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{repo: repo, pageSize: pageSize}
}

// PageSize is the number of products per page after defaulting.
func (s *Service) PageSize() int {
	return s.pageSize
}

// List returns the requested page of products, ordered by ID, restricted to
// category when it is non-nil. Pages outside 1..TotalPages yield an empty
// product slice; the total always counts the filtered set.
func (s *Service) List(ctx context.Context, category *string, page int) (ListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("list products: %w", err)
	}

	matched := make([]Product, 0, len(all))
	for _, p := range all {
		if category == nil || (p.Category != nil && *p.Category == *category) {
			matched = append(matched, p)
		}
	}
	slices.SortStableFunc(matched, func(a, b Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	info := paging.Info{
		CurrentPage:  page,
		ItemsPerPage: s.pageSize,
		TotalItems:   len(matched),
	}

	products := []Product{}
	if page >= 1 && page <= info.TotalPages() {
		start := info.Offset()
		end := min(start+s.pageSize, len(matched))
		products = matched[start:end]
	}

	return ListResult{
		Products:        products,
		PagingInfo:      info,
		CurrentCategory: category,
	}, nil
}
