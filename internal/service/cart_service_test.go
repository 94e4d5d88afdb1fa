package service

import (
	"testing"

	"gabriela-colchoes/internal/domain"
	"gabriela-colchoes/internal/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testProduct(id string, colors ...string) domain.Product {
	return domain.Product{
		ID:     id,
		Name:   "Produto " + id,
		Price:  domain.BRL("100.00"),
		Stock:  5,
		Colors: colors,
	}
}

// Repeated adds of the same (product, color) pair always collapse into a
// single line whose quantity equals the number of adds.
func TestProperty_AddToCartMergesByProductAndColor(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("n adds of one (id, color) pair yield one line with quantity n", prop.ForAll(
		func(id string, color string, adds int) bool {
			product := testProduct(id, color)
			state := NewCartState()

			for i := 0; i < adds; i++ {
				state = ReduceCart(state, AddToCart{Product: product, SelectedColor: color})
			}

			if len(state.Cart) != 1 {
				t.Logf("FAIL: expected 1 line, got %d", len(state.Cart))
				return false
			}
			if state.Cart[0].Quantity != adds {
				t.Logf("FAIL: expected quantity %d, got %d", adds, state.Cart[0].Quantity)
				return false
			}
			return true
		},
		gen.RegexMatch(`[a-z0-9]{1,12}`),
		gen.RegexMatch(`[A-Za-z]{1,12}`),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Setting a quantity to zero and removing the product are equivalent when a
// single color variant of the product is in the cart.
func TestProperty_UpdateToZeroEqualsRemove(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("UPDATE(id, 0) and REMOVE(id) produce equal carts", prop.ForAll(
		func(id string, color string, quantity int) bool {
			product := testProduct(id, color)
			base := NewCartState()
			base = ReduceCart(base, AddToCart{Product: product, SelectedColor: color})
			base = ReduceCart(base, UpdateCartQuantity{ProductID: id, Quantity: quantity})

			updated := ReduceCart(base, UpdateCartQuantity{ProductID: id, Quantity: 0})
			removed := ReduceCart(base, RemoveFromCart{ProductID: id})

			if diff := cmp.Diff(removed.Cart, updated.Cart); diff != "" {
				t.Logf("FAIL: carts differ: %s", diff)
				return false
			}
			return updated.Cart.IsEmpty()
		},
		gen.RegexMatch(`[a-z0-9]{1,12}`),
		gen.RegexMatch(`[A-Za-z]{1,12}`),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Clearing the cart is idempotent and always yields an empty cart.
func TestProperty_ClearCartIsIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("clear once and clear twice both yield an empty cart", prop.ForAll(
		func(ids []string) bool {
			state := NewCartState()
			for _, id := range ids {
				state = ReduceCart(state, AddToCart{Product: testProduct(id, "Preto"), SelectedColor: "Preto"})
			}

			cleared := ReduceCart(state, ClearCart{})
			clearedTwice := ReduceCart(cleared, ClearCart{})

			return cleared.Cart.IsEmpty() && clearedTwice.Cart.IsEmpty()
		},
		gen.SliceOf(gen.RegexMatch(`[a-z0-9]{1,8}`)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// The reducer never mutates its input state.
func TestProperty_ReducerDoesNotMutateInput(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("applying any action leaves the input state unchanged", prop.ForAll(
		func(id string, color string, quantity int) bool {
			product := testProduct(id, color)
			state := NewCartState()
			state = ReduceCart(state, AddToCart{Product: product, SelectedColor: color})
			snapshot := state
			snapshot.Cart = state.Cart.Clone()

			actions := []CartAction{
				AddToCart{Product: product, SelectedColor: color},
				RemoveFromCart{ProductID: id},
				UpdateCartQuantity{ProductID: id, Quantity: quantity},
				ClearCart{},
				SetView{View: ViewCart},
			}
			for _, action := range actions {
				_ = ReduceCart(state, action)
			}

			if diff := cmp.Diff(snapshot, state); diff != "" {
				t.Logf("FAIL: input state mutated: %s", diff)
				return false
			}
			return true
		},
		gen.RegexMatch(`[a-z0-9]{1,12}`),
		gen.RegexMatch(`[A-Za-z]{1,12}`),
		gen.IntRange(-5, 20),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// The wardrobe scenario: merging per color, two lines for two colors, and
// removal by product id dropping every color variant at once.
func TestCartScenario_TwoColorVariants(t *testing.T) {
	p1 := domain.Product{
		ID:     "P1",
		Name:   "Sofá Teste",
		Price:  domain.BRL("899.90"),
		Stock:  5,
		Colors: []string{"Red", "Blue"},
	}
	catalog, err := repository.NewSeededCatalog([]domain.Product{p1})
	require.NoError(t, err)

	cart := NewCartService(catalog, zap.NewNop())

	for i := 0; i < 3; i++ {
		cart.Dispatch(AddToCart{Product: p1, SelectedColor: "Red"})
	}
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 3, cart.Items()[0].Quantity)

	cart.Dispatch(AddToCart{Product: p1, SelectedColor: "Blue"})
	require.Len(t, cart.Items(), 2)
	assert.Equal(t, 4, cart.TotalItems())

	cart.Dispatch(RemoveFromCart{ProductID: "P1"})
	assert.True(t, cart.Items().IsEmpty())
}

func TestCartService_TotalResolvesAgainstCatalog(t *testing.T) {
	p := domain.Product{ID: "1", Name: "Cama", Price: domain.BRL("1799.90"), Stock: 7, Colors: []string{"Branco"}}
	catalog, err := repository.NewSeededCatalog([]domain.Product{p})
	require.NoError(t, err)

	cart := NewCartService(catalog, zap.NewNop())
	cart.Dispatch(AddToCart{Product: p, SelectedColor: "Branco"})
	cart.Dispatch(UpdateCartQuantity{ProductID: "1", Quantity: 2})

	total, err := cart.Total()
	require.NoError(t, err)
	assert.True(t, total.Equal(domain.BRL("3599.80")), "got %s", total.Format())

	// Price edits from the admin side are visible on the next read.
	price := domain.BRL("1000.00")
	require.NoError(t, catalog.Update("1", domain.ProductPatch{Price: &price}))

	total, err = cart.Total()
	require.NoError(t, err)
	assert.True(t, total.Equal(domain.BRL("2000.00")), "got %s", total.Format())
}

func TestCartService_LinesFailOnDeletedProduct(t *testing.T) {
	p := domain.Product{ID: "1", Name: "Mesa", Price: domain.BRL("100.00"), Stock: 2, Colors: []string{"Mogno"}}
	catalog, err := repository.NewSeededCatalog([]domain.Product{p})
	require.NoError(t, err)

	cart := NewCartService(catalog, zap.NewNop())
	cart.Dispatch(AddToCart{Product: p, SelectedColor: "Mogno"})

	catalog.Delete("1")

	_, err = cart.Lines()
	require.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestSetViewRoutesOnly(t *testing.T) {
	state := NewCartState()
	assert.Equal(t, ViewProducts, state.CurrentView)

	state = ReduceCart(state, SetView{View: ViewCart})
	assert.Equal(t, ViewCart, state.CurrentView)
	assert.True(t, state.Cart.IsEmpty())
}
