package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gabriela-colchoes/internal/domain"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product id already exists")
	ErrNegativeStock    = errors.New("stock cannot be negative")
)

// SortBy selects the ordering of catalog listings.
type SortBy string

const (
	SortByName  SortBy = "name"  // alphabetical, ascending
	SortByPrice SortBy = "price" // cheapest first
	SortByStock SortBy = "stock" // most units first
)

// CatalogReader is the storefront's read-only view of the catalog.
type CatalogReader interface {
	FindByID(id string) (domain.Product, error)
	List(sortBy SortBy) []domain.Product
	Search(term string, sortBy SortBy) []domain.Product
	Len() int
}

// CatalogRepository defines the full catalog access interface. The admin
// panel mutates it; the storefront only sees the CatalogReader subset.
type CatalogRepository interface {
	CatalogReader
	Create(product domain.Product) error
	Update(id string, patch domain.ProductPatch) error
	Delete(id string)
	UpdateStock(id string, stock int) error
}

// catalog is the in-memory implementation. The whole system is
// single-threaded and event-driven, so access is unsynchronized.
type catalog struct {
	products map[string]domain.Product
	order    []string // insertion order of ids
}

// NewCatalog creates an empty in-memory catalog.
func NewCatalog() CatalogRepository {
	return &catalog{products: make(map[string]domain.Product)}
}

// NewSeededCatalog creates a catalog pre-populated with the given products.
func NewSeededCatalog(products []domain.Product) (CatalogRepository, error) {
	c := &catalog{products: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		if err := c.Create(p); err != nil {
			return nil, fmt.Errorf("seed product %q: %w", p.ID, err)
		}
	}
	return c, nil
}

// Create inserts a new product. The id must be set and unique.
func (c *catalog) Create(product domain.Product) error {
	if product.ID == "" {
		return fmt.Errorf("create product: empty id")
	}
	if _, exists := c.products[product.ID]; exists {
		return ErrDuplicateProduct
	}
	if err := product.Validate(); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	product.Colors = domain.NormalizeColors(product.Colors)
	c.products[product.ID] = product
	c.order = append(c.order, product.ID)
	return nil
}

// Update merges the patch into the matching product. A missing id is a
// silent no-op; only invariant violations are reported.
func (c *catalog) Update(id string, patch domain.ProductPatch) error {
	current, exists := c.products[id]
	if !exists {
		return nil
	}

	updated := patch.Apply(current)
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("update product %q: %w", id, err)
	}

	c.products[id] = updated
	return nil
}

// Delete removes the matching product. Idempotent.
func (c *catalog) Delete(id string) {
	if _, exists := c.products[id]; !exists {
		return
	}
	delete(c.products, id)
	for i, pid := range c.order {
		if pid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// UpdateStock sets the stock level of the matching product. Negative values
// are rejected here regardless of what the caller already checked. A missing
// id is a silent no-op.
func (c *catalog) UpdateStock(id string, stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	product, exists := c.products[id]
	if !exists {
		return nil
	}
	product.Stock = stock
	c.products[id] = product
	return nil
}

// FindByID returns the matching product or ErrProductNotFound.
func (c *catalog) FindByID(id string) (domain.Product, error) {
	product, exists := c.products[id]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}
	return product, nil
}

// List returns all products in the requested order.
func (c *catalog) List(sortBy SortBy) []domain.Product {
	out := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	sortProducts(out, sortBy)
	return out
}

// Search returns the products whose name or description contains the term,
// case-insensitively. An empty term matches everything.
func (c *catalog) Search(term string, sortBy SortBy) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		p := c.products[id]
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	sortProducts(out, sortBy)
	return out
}

// Len returns the number of products in the catalog.
func (c *catalog) Len() int {
	return len(c.products)
}

func sortProducts(products []domain.Product, sortBy SortBy) {
	switch sortBy {
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount.LessThan(products[j].Price.Amount)
		})
	case SortByStock:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Stock > products[j].Stock
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	}
}
