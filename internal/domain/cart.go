package domain

// CartItem is one line of the cart. The product is referenced by id rather
// than copied, so later catalog edits are reflected at checkout time.
// A cart line is identified by the (ProductID, SelectedColor) pair.
type CartItem struct {
	ProductID     string
	SelectedColor string
	Quantity      int
}

// Cart is an ordered sequence of items, unique by (ProductID, SelectedColor).
type Cart []CartItem

// IsEmpty reports whether the cart has no items.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// TotalItems returns the sum of all line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// IndexOf returns the position of the line matching the given product and
// color, or -1 when absent.
func (c Cart) IndexOf(productID, color string) int {
	for i, item := range c {
		if item.ProductID == productID && item.SelectedColor == color {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
