package catalog

import "minikart/models"

// Catalog is the fixed list of purchasable products. It is seeded once at
// construction and read-only afterwards, so lookups need no locking.
type Catalog struct {
	products []models.Product
}

// New returns the catalog seeded with the demo product set.
func New() *Catalog {
	return &Catalog{
		products: []models.Product{
			{ID: 1, Name: "Women Jeans", Price: 1800.00, Img: "https://via.placeholder.com/150/FF9933/FFFFFF?text=Women Jeans"},
			{ID: 2, Name: "Oversize Tshirt", Price: 1000.00, Img: "https://via.placeholder.com/150/138808/FFFFFF?text=Oversize Tshirt"},
			{ID: 3, Name: "Men's Perfume", Price: 700.00, Img: "https://via.placeholder.com/150/E3B45B/000000?text=Mens perfume"},
			{ID: 4, Name: "Men's Jeans", Price: 950.00, Img: "https://via.placeholder.com/150/8D5524/FFFFFF?text=Mens Jeans"},
			{ID: 5, Name: "Sliders", Price: 1200.00, Img: "https://via.placeholder.com/150/2C3E50/FFFFFF?text=Sliders"},
		},
	}
}

// List returns all products in insertion order.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks a product up by id. Absence is a normal outcome, not an error.
func (c *Catalog) Find(id int64) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
