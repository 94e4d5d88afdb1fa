package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

var (
	ErrInvalidPrice = errors.New("price must be a non-negative decimal")
	ErrInvalidStock = errors.New("stock must be a non-negative integer")
)

// Product is a catalog entry. ID is assigned on creation and never changes.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Image       string
	Stock       int
	Colors      []string
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// HasColor reports whether the given label is one of the product's colors.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// Validate checks the catalog invariants on a committed product.
func (p Product) Validate() error {
	if p.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// ProductDraft holds form-submitted fields before they are committed to the
// catalog. Numeric fields arrive as raw strings and are parsed, not trusted.
type ProductDraft struct {
	Name        string `validate:"required,max=255"`
	Description string `validate:"max=2000"`
	Price       string `validate:"required"`
	Image       string `validate:"max=500"`
	Stock       string `validate:"required"`
	Colors      []string
}

// Commit parses and validates the draft into product fields. The ID is left
// empty; the catalog owner assigns it. Unparseable or negative numeric input
// is rejected rather than coerced to zero.
func (d ProductDraft) Commit(unit currency.Unit) (Product, error) {
	price, err := ParsePrice(d.Price, unit)
	if err != nil {
		return Product{}, err
	}

	stock, err := strconv.Atoi(strings.TrimSpace(d.Stock))
	if err != nil || stock < 0 {
		return Product{}, fmt.Errorf("parse stock %q: %w", d.Stock, ErrInvalidStock)
	}

	return Product{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
		Image:       strings.TrimSpace(d.Image),
		Stock:       stock,
		Colors:      NormalizeColors(d.Colors),
	}, nil
}

// NormalizeColors trims each label, drops blanks and removes duplicates
// while preserving the original order.
func NormalizeColors(colors []string) []string {
	seen := make(map[string]struct{}, len(colors))
	normalized := make([]string, 0, len(colors))

	for _, c := range colors {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		normalized = append(normalized, c)
	}

	return normalized
}

// ProductPatch is a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *Money
	Image       *string
	Stock       *int
	Colors      *[]string
}

// Apply merges the patch into a copy of the product. The ID is immutable
// and cannot be patched.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Colors != nil {
		p.Colors = NormalizeColors(*patch.Colors)
	}
	return p
}
