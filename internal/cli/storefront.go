package cli

import (
	"io"
	"strings"

	"gabriela-colchoes/internal/repository"
	"gabriela-colchoes/internal/service"
	"gabriela-colchoes/internal/validation"

	"go.uber.org/zap"
)

// Storefront is the customer-facing console. Search term and sort key are
// view-local state, exactly like the original product list; they never touch
// the cart store.
type Storefront struct {
	console
	cart     *service.CartService
	checkout *service.CheckoutService
	catalog  repository.CatalogReader

	searchTerm string
	sortBy     repository.SortBy
}

// NewStorefront creates the storefront console.
func NewStorefront(
	cart *service.CartService,
	checkout *service.CheckoutService,
	catalog repository.CatalogReader,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Storefront {
	return &Storefront{
		console:  newConsole(in, out, logger),
		cart:     cart,
		checkout: checkout,
		catalog:  catalog,
		sortBy:   repository.SortByName,
	}
}

// Run drives the storefront loop until the customer quits or input ends.
func (s *Storefront) Run() {
	s.println("Bem-vindo! Digite 'ajuda' para ver os comandos.")
	s.renderView()

	for {
		line, ok := s.prompt(">")
		if !ok {
			return
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "":
		case "ajuda", "help":
			s.printHelp()
		case "produtos":
			s.cart.Dispatch(service.SetView{View: service.ViewProducts})
			s.renderView()
		case "carrinho":
			s.cart.Dispatch(service.SetView{View: service.ViewCart})
			s.renderView()
		case "buscar":
			s.searchTerm = arg
			s.renderProducts()
		case "ordenar":
			s.setSort(arg)
		case "ver":
			s.showProduct(arg)
		case "adicionar":
			s.addToCart(arg)
		case "mais":
			s.changeQuantity(arg, +1)
		case "menos":
			s.changeQuantity(arg, -1)
		case "remover":
			s.cart.Dispatch(service.RemoveFromCart{ProductID: arg})
			s.renderCart()
		case "limpar":
			s.cart.Dispatch(service.ClearCart{})
			s.renderCart()
		case "finalizar":
			s.runCheckout()
		case "sair":
			return
		default:
			s.printf("Comando desconhecido: %q. Digite 'ajuda'.\n", cmd)
		}
	}
}

func (s *Storefront) printHelp() {
	s.println("Comandos:")
	s.println("  produtos                 ver a lista de produtos")
	s.println("  buscar <termo>           filtrar por nome ou descrição")
	s.println("  ordenar <nome|preco|estoque>")
	s.println("  ver <id>                 detalhes de um produto")
	s.println("  adicionar <id> <cor>     adicionar ao carrinho")
	s.println("  carrinho                 ver o carrinho")
	s.println("  mais <id> / menos <id>   ajustar quantidade")
	s.println("  remover <id>             remover do carrinho")
	s.println("  limpar                   esvaziar o carrinho")
	s.println("  finalizar                enviar pedido pelo WhatsApp")
	s.println("  sair                     encerrar")
}

func (s *Storefront) renderView() {
	if s.cart.CurrentView() == service.ViewCart {
		s.renderCart()
		return
	}
	s.renderProducts()
}

func (s *Storefront) renderProducts() {
	products := s.catalog.Search(s.searchTerm, s.sortBy)
	if len(products) == 0 {
		s.println("Nenhum produto encontrado.")
		return
	}
	for _, p := range products {
		status := "Disponível"
		if !p.InStock() {
			status = "Indisponível"
		}
		s.printf("[%s] %s — %s (%s, estoque: %d)\n", p.ID, p.Name, p.Price.Format(), status, p.Stock)
	}
	s.printf("Mostrando %d de %d produtos\n", len(products), s.catalog.Len())
}

func (s *Storefront) setSort(arg string) {
	switch arg {
	case "preco":
		s.sortBy = repository.SortByPrice
	case "estoque":
		s.sortBy = repository.SortByStock
	default:
		s.sortBy = repository.SortByName
	}
	s.renderProducts()
}

func (s *Storefront) showProduct(id string) {
	p, err := s.catalog.FindByID(id)
	if err != nil {
		s.println("Produto não encontrado.")
		return
	}
	s.printf("%s\n%s\n", p.Name, p.Description)
	s.printf("Preço: %s  Estoque: %d\n", p.Price.Format(), p.Stock)
	if len(p.Colors) > 0 {
		s.printf("Cores: %v\n", p.Colors)
	}
	s.printf("Imagem: %s\n", p.Image)
}

func (s *Storefront) addToCart(arg string) {
	id, color := splitCommand(arg)
	product, err := s.catalog.FindByID(id)
	if err != nil {
		s.println("Produto não encontrado.")
		return
	}
	if !product.InStock() {
		s.println("Produto indisponível.")
		return
	}
	if !product.HasColor(color) {
		s.printf("Escolha uma das cores: %v\n", product.Colors)
		return
	}

	s.cart.Dispatch(service.AddToCart{Product: product, SelectedColor: color})
	s.printf("%s (%s) adicionado ao carrinho.\n", product.Name, color)
}

// changeQuantity is the UI-side quantity control. The increment is capped at
// the product's stock; the store itself never enforces this.
func (s *Storefront) changeQuantity(id string, delta int) {
	items := s.cart.Items()
	i := -1
	for j, item := range items {
		if item.ProductID == id {
			i = j
			break
		}
	}
	if i < 0 {
		s.println("Item não está no carrinho.")
		return
	}

	next := items[i].Quantity + delta
	if delta > 0 {
		product, err := s.catalog.FindByID(id)
		if err == nil && next > product.Stock {
			s.println("Estoque máximo atingido.")
			return
		}
	}

	s.cart.Dispatch(service.UpdateCartQuantity{ProductID: id, Quantity: next})
	s.renderCart()
}

func (s *Storefront) renderCart() {
	lines, err := s.cart.Lines()
	if err != nil {
		s.println("Não foi possível carregar o carrinho:", err)
		return
	}
	if len(lines) == 0 {
		s.println("Seu carrinho está vazio.")
		return
	}

	for _, line := range lines {
		s.printf("[%s] %s — Cor: %s, Qtd: %d, Subtotal: %s\n",
			line.Product.ID, line.Product.Name, line.SelectedColor, line.Quantity, line.Subtotal.Format())
	}
	total, err := s.cart.Total()
	if err != nil {
		s.println("Não foi possível calcular o total:", err)
		return
	}
	s.printf("Total de itens: %d  Valor total: %s\n", s.cart.TotalItems(), total.Format())
}

// runCheckout collects the checkout form, validates it and hands the order
// off to WhatsApp. The form is a local draft; an invalid submission leaves
// the cart untouched.
func (s *Storefront) runCheckout() {
	payment, ok := s.prompt("Forma de pagamento")
	if !ok {
		return
	}
	order := service.Order{PaymentMethod: payment}
	if order.Address.Street, ok = s.prompt("Rua"); !ok {
		return
	}
	if order.Address.Number, ok = s.prompt("Número"); !ok {
		return
	}
	if order.Address.Neighborhood, ok = s.prompt("Bairro"); !ok {
		return
	}
	if order.Address.City, ok = s.prompt("Cidade"); !ok {
		return
	}
	if order.Address.Complement, ok = s.prompt("Complemento (opcional)"); !ok {
		return
	}

	link, err := s.checkout.BuildOrderLink(s.cart.Items(), order)
	if err != nil {
		for _, fe := range validation.FormatErrors(err) {
			s.printf("Campo %s: %s\n", fe.Field, fe.Message)
		}
		s.println("Pedido não enviado:", err)
		return
	}

	s.println("Abrindo o WhatsApp com o seu pedido:")
	s.println(link)
	s.openLink(link)
}

// splitCommand splits a line into a lowercase command word and its argument.
func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	cmd := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return cmd, ""
	}
	return cmd, strings.TrimSpace(parts[1])
}
