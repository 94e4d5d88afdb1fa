package service

import (
	"fmt"

	"gabriela-colchoes/internal/domain"
	"gabriela-colchoes/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// StorefrontView is the storefront's UI routing flag. It travels through the
// same dispatch channel as the cart actions.
type StorefrontView string

const (
	ViewProducts StorefrontView = "products"
	ViewCart     StorefrontView = "cart"
)

// CartState is the storefront store: the cart plus the current view.
type CartState struct {
	Cart        domain.Cart
	CurrentView StorefrontView
}

// NewCartState returns the initial storefront state: empty cart, product view.
func NewCartState() CartState {
	return CartState{CurrentView: ViewProducts}
}

// CartAction is a storefront state transition request.
type CartAction interface {
	cartAction()
}

// AddToCart appends a new line for (product, color) with quantity 1, or
// increments the existing line by 1.
type AddToCart struct {
	Product       domain.Product
	SelectedColor string
}

// RemoveFromCart drops every line for the product id, regardless of color.
type RemoveFromCart struct {
	ProductID string
}

// UpdateCartQuantity sets the quantity of every line for the product id.
// Zero or negative quantities remove the line.
type UpdateCartQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// SetView switches the storefront view.
type SetView struct {
	View StorefrontView
}

func (AddToCart) cartAction()          {}
func (RemoveFromCart) cartAction()     {}
func (UpdateCartQuantity) cartAction() {}
func (ClearCart) cartAction()          {}
func (SetView) cartAction()            {}

// ReduceCart is the storefront state transition function. It is pure and
// total: the input state is never mutated, every action yields a valid
// successor state, and an unknown action returns the state unchanged.
//
// Removal and quantity updates are scoped by product id alone, so they
// affect every color variant of the product at once. Adding merges on the
// (product id, color) pair.
func ReduceCart(state CartState, action CartAction) CartState {
	switch a := action.(type) {
	case AddToCart:
		cart := state.Cart.Clone()
		if i := cart.IndexOf(a.Product.ID, a.SelectedColor); i >= 0 {
			cart[i].Quantity++
		} else {
			cart = append(cart, domain.CartItem{
				ProductID:     a.Product.ID,
				SelectedColor: a.SelectedColor,
				Quantity:      1,
			})
		}
		state.Cart = cart
		return state

	case RemoveFromCart:
		cart := make(domain.Cart, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.ProductID != a.ProductID {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case UpdateCartQuantity:
		cart := make(domain.Cart, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.ProductID == a.ProductID {
				item.Quantity = a.Quantity
			}
			if item.Quantity > 0 {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case ClearCart:
		state.Cart = domain.Cart{}
		return state

	case SetView:
		state.CurrentView = a.View
		return state

	default:
		return state
	}
}

// CartLine is a cart item resolved against the catalog for display and
// checkout: current product data plus the line subtotal.
type CartLine struct {
	Product       domain.Product
	SelectedColor string
	Quantity      int
	Subtotal      domain.Money
}

// CartService owns the storefront state and applies actions to it through
// the reducer. Prices are resolved against the shared catalog at read time,
// never stored in the cart.
type CartService struct {
	state   CartState
	catalog repository.CatalogReader
	logger  *zap.Logger
}

// NewCartService creates a storefront store over the given catalog.
func NewCartService(catalog repository.CatalogReader, logger *zap.Logger) *CartService {
	return &CartService{
		state:   NewCartState(),
		catalog: catalog,
		logger:  logger,
	}
}

// Dispatch applies an action to the current state.
func (s *CartService) Dispatch(action CartAction) {
	s.state = ReduceCart(s.state, action)
	s.logger.Debug("cart action applied",
		zap.String("action", fmt.Sprintf("%T", action)),
		zap.Int("lines", len(s.state.Cart)),
		zap.Int("items", s.state.Cart.TotalItems()),
	)
}

// State returns a copy of the current storefront state.
func (s *CartService) State() CartState {
	state := s.state
	state.Cart = s.state.Cart.Clone()
	return state
}

// Items returns a copy of the current cart.
func (s *CartService) Items() domain.Cart {
	return s.state.Cart.Clone()
}

// CurrentView returns the active storefront view.
func (s *CartService) CurrentView() StorefrontView {
	return s.state.CurrentView
}

// TotalItems returns the sum of all line quantities.
func (s *CartService) TotalItems() int {
	return s.state.Cart.TotalItems()
}

// Lines resolves every cart item against the catalog. An item whose product
// no longer exists fails the whole resolution.
func (s *CartService) Lines() ([]CartLine, error) {
	lines := make([]CartLine, 0, len(s.state.Cart))
	for _, item := range s.state.Cart {
		product, err := s.catalog.FindByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolve cart item %q: %w", item.ProductID, err)
		}
		lines = append(lines, CartLine{
			Product:       product,
			SelectedColor: item.SelectedColor,
			Quantity:      item.Quantity,
			Subtotal:      product.Price.Mul(item.Quantity),
		})
	}
	return lines, nil
}

// Total returns the cart's total price. An empty cart totals to zero in the
// store currency.
func (s *CartService) Total() (domain.Money, error) {
	lines, err := s.Lines()
	if err != nil {
		return domain.Money{}, err
	}
	total := domain.ZeroMoney(currency.BRL)
	if len(lines) > 0 {
		total = domain.ZeroMoney(lines[0].Subtotal.Currency)
	}
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}
	return total, nil
}
