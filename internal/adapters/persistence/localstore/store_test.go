package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"mycloth-atelier/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestProductStoreCRUD(t *testing.T) {
	store := openTestStore(t)
	repo := NewProductStore(store)
	ctx := context.Background()

	product := &domain.Product{Name: "Trunk", Category: domain.CategoryMens, Price: 1499, Stock: 50}
	require.NoError(t, repo.Create(ctx, product))
	assert.NotEmpty(t, product.ID, "local store assigns a random id")

	loaded, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trunk", loaded.Name)

	loaded.Stock = 7
	require.NoError(t, repo.Update(ctx, *loaded))
	again, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, again.Stock)

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err = repo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductStoreUpdateAbsent(t *testing.T) {
	store := openTestStore(t)
	repo := NewProductStore(store)

	err := repo.Update(context.Background(), domain.Product{ID: "ghost", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductStoreDeleteAbsentIsNoOp(t *testing.T) {
	store := openTestStore(t)
	repo := NewProductStore(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Product{Name: "Trunk", Category: domain.CategoryMens, Price: 1499, Stock: 50}))

	assert.NoError(t, repo.Delete(ctx, "ghost"))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1, "existing rows survive a ghost delete")
}

func TestProductStorePreservesInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	repo := NewProductStore(store)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &domain.Product{Name: name, Category: domain.CategoryMens, Price: 1, Stock: 1}))
	}

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "first", products[0].Name)
	assert.Equal(t, "third", products[2].Name)
}

func TestSeedIfEmptyDoesNotOverwrite(t *testing.T) {
	store := openTestStore(t)
	repo := NewProductStore(store)
	ctx := context.Background()

	seed := []domain.Product{{ID: "m1", Name: "Seeded", Category: domain.CategoryMens, Price: 1, Stock: 1}}
	require.NoError(t, repo.SeedIfEmpty(ctx, seed))

	edited := seed[0]
	edited.Name = "Edited"
	require.NoError(t, repo.Update(ctx, edited))

	require.NoError(t, repo.SeedIfEmpty(ctx, seed))
	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Edited", products[0].Name, "reseeding must not clobber edits")
}

func TestUserStoreCaseInsensitiveEmail(t *testing.T) {
	store := openTestStore(t)
	repo := NewUserStore(store)
	ctx := context.Background()

	account := &domain.Account{User: domain.User{Name: "Asha", Email: "Asha@Example.com", Role: domain.RoleUser}}
	require.NoError(t, repo.Create(ctx, account))

	loaded, err := repo.GetByEmail(ctx, "asha@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", loaded.Name)

	exists, err := repo.ExistsByEmail(ctx, "ASHA@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStaffStoreDeleteAbsentIsNoOp(t *testing.T) {
	store := openTestStore(t)
	repo := NewStaffStore(store)

	assert.NoError(t, repo.Delete(context.Background(), "ghost"))
}

func TestClientStateCartRoundtrip(t *testing.T) {
	store := openTestStore(t)
	state := NewClientState(store)

	items := []domain.CartItem{
		{Product: domain.Product{ID: "m1", Price: 1499}, Quantity: 2},
	}
	require.NoError(t, state.SaveCart("sess", items))

	loaded, err := state.Cart("sess")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].Quantity)
}

func TestClientStateLastWriteWins(t *testing.T) {
	store := openTestStore(t)
	state := NewClientState(store)

	first := []domain.CartItem{{Product: domain.Product{ID: "m1"}, Quantity: 1}}
	second := []domain.CartItem{{Product: domain.Product{ID: "m2"}, Quantity: 5}}
	require.NoError(t, state.SaveCart("sess", first))
	require.NoError(t, state.SaveCart("sess", second))

	loaded, err := state.Cart("sess")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "m2", loaded[0].ID, "the last completed save is the state")
}

func TestClientStateThemeDefaultsToLight(t *testing.T) {
	store := openTestStore(t)
	state := NewClientState(store)

	theme, err := state.Theme("fresh")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	require.NoError(t, state.SaveTheme("fresh", ThemeDark))
	theme, err = state.Theme("fresh")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	// Unknown values coerce back to light
	require.NoError(t, state.SaveTheme("fresh", "neon"))
	theme, err = state.Theme("fresh")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestClientStateSessionCache(t *testing.T) {
	store := openTestStore(t)
	state := NewClientState(store)

	cached, err := state.Session("sess")
	require.NoError(t, err)
	assert.Nil(t, cached)

	user := domain.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: domain.RoleUser}
	require.NoError(t, state.SaveSession("sess", user))

	cached, err = state.Session("sess")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "u1", cached.ID)

	require.NoError(t, state.ClearSession("sess"))
	cached, err = state.Session("sess")
	require.NoError(t, err)
	assert.Nil(t, cached)
}
