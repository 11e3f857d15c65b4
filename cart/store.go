package cart

import (
	"errors"
	"math"
	"sync"

	"minikart/catalog"
	"minikart/models"
)

// ErrProductNotFound is returned by Add when the product id does not exist in
// the catalog. No mutation happens in that case.
var ErrProductNotFound = errors.New("product not found")

// Store holds the live cart. There is one store per server instance; every
// request mutates the same one, so all access goes through the mutex.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	items   []models.CartItem
	nextID  int64
}

func NewStore(c *catalog.Catalog) *Store {
	return &Store{
		catalog: c,
		nextID:  1,
	}
}

// Items returns a snapshot of the cart lines plus the aggregate total.
func (s *Store) Items() ([]models.CartItem, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add resolves productID against the catalog and either merges the quantity
// into an existing line for that product or appends a new line with the next
// cart id. Name and price are snapshotted from the product on first add.
// Quantity is taken as supplied; zero and negative values are accepted.
func (s *Store) Add(productID int64, qty int) ([]models.CartItem, float64, error) {
	product, ok := s.catalog.Find(productID)
	if !ok {
		return nil, 0, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Qty += qty
			items, total := s.snapshot()
			return items, total, nil
		}
	}

	s.items = append(s.items, models.CartItem{
		ID:        s.nextID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
	})
	s.nextID++

	items, total := s.snapshot()
	return items, total, nil
}

// Remove deletes the line with the given cart id. Removing an id that is not
// in the cart is a no-op, not an error.
func (s *Store) Remove(itemID int64) ([]models.CartItem, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.items = kept

	return s.snapshot()
}

// Clear empties the cart and resets the id counter, so the next line added
// gets id 1 again. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.nextID = 1
}

// snapshot copies the lines and totals them. Callers must hold s.mu.
func (s *Store) snapshot() ([]models.CartItem, float64) {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out, Total(out)
}

// Total sums price*qty over the given lines, rounded to two decimal places
// at the final sum rather than per line.
func Total(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Qty)
	}
	return math.Round(sum*100) / 100
}
