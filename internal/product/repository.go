package product

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// Repository exposes the full product sequence. Filtering, ordering and
// paging are done by the Service, never by the repository.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests,
// local seeding and the spreadsheet-backed catalog.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{}
	r.storage = append(make([]Product, 0, len(seed)), seed...)
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

// Reset replaces the whole in-memory storage with the provided products.
func (r *InMemoryRepository) Reset(products []Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append(make([]Product, 0, len(products)), products...)
}

// SampleProducts is the catalog served when no external source is configured.
func SampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Kayak", Description: "A boat for one person", Category: ptrString("Watersports"), Price: decimal.RequireFromString("275")},
		{ID: 2, Name: "Lifejacket", Description: "Protective and fashionable", Category: ptrString("Watersports"), Price: decimal.RequireFromString("48.95")},
		{ID: 3, Name: "Soccer Ball", Description: "FIFA-approved size and weight", Category: ptrString("Soccer"), Price: decimal.RequireFromString("19.50")},
		{ID: 4, Name: "Corner Flags", Description: "Give your playing field a professional touch", Category: ptrString("Soccer"), Price: decimal.RequireFromString("34.95")},
		{ID: 5, Name: "Stadium", Description: "Flat-packed 35,000-seat stadium", Category: ptrString("Soccer"), Price: decimal.RequireFromString("79500")},
		{ID: 6, Name: "Thinking Cap", Description: "Improve brain efficiency by 75%", Category: ptrString("Chess"), Price: decimal.RequireFromString("16")},
		{ID: 7, Name: "Unsteady Chair", Description: "Secretly give your opponent a disadvantage", Category: ptrString("Chess"), Price: decimal.RequireFromString("29.95")},
		{ID: 8, Name: "Human Chess Board", Description: "A fun game for the family", Category: ptrString("Chess"), Price: decimal.RequireFromString("75")},
		{ID: 9, Name: "Bling-Bling King", Description: "Gold-plated, diamond-studded King", Category: ptrString("Chess"), Price: decimal.RequireFromString("1200")},
	}
}
