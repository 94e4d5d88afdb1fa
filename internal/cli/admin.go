package cli

import (
	"io"
	"strconv"
	"strings"

	"gabriela-colchoes/internal/domain"
	"gabriela-colchoes/internal/repository"
	"gabriela-colchoes/internal/service"
	"gabriela-colchoes/internal/validation"

	"go.uber.org/zap"
)

// Admin is the management console. Form drafts (new product fields, stock
// values, passwords) live here until they validate; the store only ever sees
// committed values.
type Admin struct {
	console
	admin *service.AdminService
}

// NewAdmin creates the admin console.
func NewAdmin(admin *service.AdminService, in io.Reader, out io.Writer, logger *zap.Logger) *Admin {
	return &Admin{
		console: newConsole(in, out, logger),
		admin:   admin,
	}
}

// Run drives the admin loop: a login gate, then the view commands. The loop
// returns to the gate whenever the session ends, including after a password
// change.
func (a *Admin) Run() {
	for {
		if !a.admin.IsAuthenticated() {
			if !a.loginGate() {
				return
			}
		}

		line, ok := a.prompt("admin>")
		if !ok {
			return
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "":
		case "ajuda", "help":
			a.printHelp()
		case "painel":
			a.admin.SetCurrentView(service.AdminViewDashboard)
			a.renderDashboard()
		case "produtos":
			a.admin.SetCurrentView(service.AdminViewProducts)
			a.renderProducts()
		case "estoque":
			a.admin.SetCurrentView(service.AdminViewStock)
			a.renderStock()
		case "adicionar":
			a.addProduct()
		case "editar":
			a.editProduct(arg)
		case "excluir":
			a.admin.DeleteProduct(arg)
			a.println("Produto excluído (se existia).")
		case "definir":
			a.setStock(arg)
		case "senha":
			a.changePassword()
		case "logout":
			a.admin.Logout()
		case "sair":
			return
		default:
			a.printf("Comando desconhecido: %q. Digite 'ajuda'.\n", cmd)
		}
	}
}

// loginGate prompts for credentials until a login succeeds or input ends.
func (a *Admin) loginGate() bool {
	for {
		username, ok := a.prompt("Usuário")
		if !ok {
			return false
		}
		password, ok := a.prompt("Senha")
		if !ok {
			return false
		}
		if a.admin.Login(username, password) {
			a.println("Login realizado.")
			return true
		}
		a.println("Usuário ou senha incorretos.")
	}
}

func (a *Admin) printHelp() {
	a.println("Comandos:")
	a.println("  painel              resumo do catálogo")
	a.println("  produtos            listar produtos")
	a.println("  adicionar           cadastrar produto")
	a.println("  editar <id>         alterar produto")
	a.println("  excluir <id>        remover produto")
	a.println("  estoque             ver situação do estoque")
	a.println("  definir <id> <qtd>  ajustar estoque")
	a.println("  senha               alterar a senha")
	a.println("  logout              encerrar a sessão")
	a.println("  sair                fechar o console")
}

func (a *Admin) renderDashboard() {
	stats := a.admin.Stats()
	a.printf("Produtos cadastrados: %d\n", stats.TotalProducts)
	a.printf("Unidades em estoque: %d\n", stats.TotalUnits)
	a.printf("Valor do estoque: %s\n", stats.InventoryValue.Format())
	if len(stats.LowStock) > 0 {
		a.println("Alertas de estoque:")
		for _, p := range stats.LowStock {
			label := "Estoque Baixo"
			if p.Stock == 0 {
				label = "Esgotado"
			}
			a.printf("  %s — %d unidades (%s)\n", p.Name, p.Stock, label)
		}
	}
}

func (a *Admin) renderProducts() {
	for _, p := range a.admin.Products(repository.SortByName) {
		a.printf("[%s] %s — %s, estoque: %d, cores: %v\n",
			p.ID, p.Name, p.Price.Format(), p.Stock, p.Colors)
	}
}

func (a *Admin) renderStock() {
	for _, p := range a.admin.Products(repository.SortByStock) {
		var label string
		switch a.admin.StockStatusOf(p) {
		case service.StockStatusOut:
			label = "Esgotado"
		case service.StockStatusLow:
			label = "Baixo"
		default:
			label = "Normal"
		}
		a.printf("[%s] %s — %d unidades (%s)\n", p.ID, p.Name, p.Stock, label)
	}
}

// addProduct collects a draft and commits it through the store. Parsing and
// validation happen in the store path; the console only reports failures.
func (a *Admin) addProduct() {
	draft, ok := a.collectDraft()
	if !ok {
		return
	}

	product, err := a.admin.AddProduct(draft)
	if err != nil {
		for _, fe := range validation.FormatErrors(err) {
			a.printf("Campo %s: %s\n", fe.Field, fe.Message)
		}
		a.println("Produto não cadastrado:", err)
		return
	}
	a.printf("Produto cadastrado com id %s.\n", product.ID)
}

func (a *Admin) collectDraft() (domain.ProductDraft, bool) {
	var draft domain.ProductDraft
	var ok bool
	if draft.Name, ok = a.prompt("Nome"); !ok {
		return draft, false
	}
	if draft.Description, ok = a.prompt("Descrição"); !ok {
		return draft, false
	}
	if draft.Price, ok = a.prompt("Preço"); !ok {
		return draft, false
	}
	if draft.Stock, ok = a.prompt("Estoque"); !ok {
		return draft, false
	}
	if draft.Image, ok = a.prompt("Imagem (URL)"); !ok {
		return draft, false
	}
	colors, ok := a.prompt("Cores (separadas por vírgula)")
	if !ok {
		return draft, false
	}
	draft.Colors = strings.Split(colors, ",")
	return draft, true
}

// editProduct builds a patch from the submitted fields; blank answers leave
// the field unchanged.
func (a *Admin) editProduct(id string) {
	current, err := a.admin.FindProduct(id)
	if err != nil {
		a.println("Produto não encontrado.")
		return
	}
	a.printf("Editando %s (deixe em branco para manter).\n", current.Name)

	var patch domain.ProductPatch
	if v, ok := a.prompt("Nome"); !ok {
		return
	} else if v != "" {
		patch.Name = &v
	}
	if v, ok := a.prompt("Descrição"); !ok {
		return
	} else if v != "" {
		patch.Description = &v
	}
	if v, ok := a.prompt("Preço"); !ok {
		return
	} else if v != "" {
		price, err := domain.ParsePrice(v, current.Price.Currency)
		if err != nil {
			a.println("Preço inválido:", err)
			return
		}
		patch.Price = &price
	}
	if v, ok := a.prompt("Estoque"); !ok {
		return
	} else if v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			a.println("Estoque inválido.")
			return
		}
		patch.Stock = &stock
	}
	if v, ok := a.prompt("Cores (separadas por vírgula)"); !ok {
		return
	} else if v != "" {
		colors := strings.Split(v, ",")
		patch.Colors = &colors
	}

	if err := a.admin.UpdateProduct(id, patch); err != nil {
		a.println("Produto não atualizado:", err)
		return
	}
	a.println("Produto atualizado.")
}

func (a *Admin) setStock(arg string) {
	id, qty := splitCommand(arg)
	stock, err := strconv.Atoi(qty)
	if err != nil {
		a.println("Uso: definir <id> <quantidade>")
		return
	}
	if err := a.admin.UpdateStock(id, stock); err != nil {
		a.println("Estoque não alterado:", err)
		return
	}
	a.println("Estoque atualizado.")
}

func (a *Admin) changePassword() {
	current, ok := a.prompt("Senha atual")
	if !ok {
		return
	}
	next, ok := a.prompt("Nova senha")
	if !ok {
		return
	}
	if !a.admin.ChangePassword(current, next) {
		a.println("Senha atual incorreta.")
		return
	}
	a.println("Senha alterada. Faça login novamente.")
}
