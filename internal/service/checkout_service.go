package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gabriela-colchoes/internal/domain"
	"gabriela-colchoes/internal/repository"
	"gabriela-colchoes/internal/validation"

	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// Address is the delivery address collected at checkout. Complement is the
// only optional field.
type Address struct {
	Street       string `validate:"required"`
	Number       string `validate:"required"`
	Neighborhood string `validate:"required"`
	City         string `validate:"required"`
	Complement   string
}

// Order is the checkout form: payment method plus delivery address. It is a
// disposable draft; nothing of it is retained after the handoff.
type Order struct {
	PaymentMethod string `validate:"required"`
	Address       Address
}

// CheckoutService turns a cart into a pre-filled WhatsApp order message
// addressed to the store's contact number. The handoff is fire-and-forget:
// success is the link being produced, nothing is read back and stock is not
// touched.
type CheckoutService struct {
	catalog     repository.CatalogReader
	storeName   string
	phoneNumber string
	logger      *zap.Logger
}

// NewCheckoutService creates a checkout service for the given store identity.
func NewCheckoutService(catalog repository.CatalogReader, storeName, phoneNumber string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		catalog:     catalog,
		storeName:   storeName,
		phoneNumber: phoneNumber,
		logger:      logger,
	}
}

// BuildOrderLink validates the order form, renders the order message and
// returns the wa.me deep link carrying it. Missing required fields or an
// empty cart block the handoff; no partial order can be produced.
func (s *CheckoutService) BuildOrderLink(cart domain.Cart, order Order) (string, error) {
	message, err := s.BuildOrderMessage(cart, order)
	if err != nil {
		return "", err
	}

	link := WhatsAppLink(s.phoneNumber, message)
	s.logger.Info("order handoff link built",
		zap.Int("lines", len(cart)),
		zap.Int("items", cart.TotalItems()),
	)
	return link, nil
}

// BuildOrderMessage renders the plain-text order summary: every cart line
// with color, quantity, unit price and subtotal, the order totals, the
// payment method and the delivery address.
func (s *CheckoutService) BuildOrderMessage(cart domain.Cart, order Order) (string, error) {
	if err := validation.Validate(order); err != nil {
		return "", fmt.Errorf("invalid order form: %w", err)
	}
	if cart.IsEmpty() {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛏️ *Pedido - %s*\n\n", s.storeName)

	total := domain.Money{}
	for i, item := range cart {
		product, err := s.catalog.FindByID(item.ProductID)
		if err != nil {
			return "", fmt.Errorf("resolve order item %q: %w", item.ProductID, err)
		}
		subtotal := product.Price.Mul(item.Quantity)
		if i == 0 {
			total = domain.ZeroMoney(product.Price.Currency)
		}
		total = total.Add(subtotal)

		fmt.Fprintf(&b, "%d. %s\n", i+1, product.Name)
		fmt.Fprintf(&b, "   Cor: %s\n", item.SelectedColor)
		fmt.Fprintf(&b, "   Quantidade: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Preço unitário: %s\n", product.Price.Format())
		fmt.Fprintf(&b, "   Subtotal: %s\n\n", subtotal.Format())
	}

	b.WriteString("📊 *Resumo do Pedido:*\n")
	fmt.Fprintf(&b, "Total de itens: %d\n", cart.TotalItems())
	fmt.Fprintf(&b, "Valor total: %s\n\n", total.Format())

	fmt.Fprintf(&b, "💳 *Forma de Pagamento:* %s\n\n", order.PaymentMethod)

	b.WriteString("📍 *Endereço de Entrega:*\n")
	fmt.Fprintf(&b, "%s, %s\n", order.Address.Street, order.Address.Number)
	fmt.Fprintf(&b, "%s\n", order.Address.Neighborhood)
	fmt.Fprintf(&b, "%s\n", order.Address.City)
	if order.Address.Complement != "" {
		fmt.Fprintf(&b, "Complemento: %s\n", order.Address.Complement)
	}
	b.WriteString("\n")

	b.WriteString("Gostaria de finalizar este pedido! 😊")

	return b.String(), nil
}

// WhatsAppLink builds the wa.me deep link with the message as a pre-filled
// text parameter. Spaces are percent-encoded, not '+'-encoded, to match what
// the messaging service expects in a deep link.
func WhatsAppLink(phoneNumber, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phoneNumber, encoded)
}
