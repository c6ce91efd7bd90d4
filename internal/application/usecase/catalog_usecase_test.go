package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewflow-pos/internal/application/usecase"
	"github.com/jhoicas/brewflow-pos/internal/infrastructure/memory"
)

func newCatalogUseCase(t *testing.T) *usecase.CatalogUseCase {
	t.Helper()
	repo := memory.NewProductRepository()
	repo.Load(memory.SeedProducts(), memory.SeedCategories())
	return usecase.NewCatalogUseCase(repo)
}

// "all" y categoría vacía listan el catálogo completo; una categoría
// concreta filtra las pestañas del POS.
func TestCatalog_ListPorCategoria(t *testing.T) {
	uc := newCatalogUseCase(t)

	todo, err := uc.List("all", 0, 0)
	require.NoError(t, err)
	assert.Len(t, todo.Items, 7)

	cafe, err := uc.List("coffee", 0, 0)
	require.NoError(t, err)
	require.Len(t, cafe.Items, 3)
	assert.Equal(t, "Espresso", cafe.Items[0].Name)
	assert.Equal(t, "2.50", cafe.Items[0].Price)
}

// La paginación respeta limit/offset sobre el orden de carga.
func TestCatalog_ListPaginado(t *testing.T) {
	uc := newCatalogUseCase(t)

	pag, err := uc.List("", 2, 1)
	require.NoError(t, err)
	require.Len(t, pag.Items, 2)
	assert.Equal(t, "Latte", pag.Items[0].Name)
	assert.Equal(t, "Croissant", pag.Items[1].Name)
}

// GetByID devuelve nil (no error) cuando el producto no existe.
func TestCatalog_GetByIDInexistente(t *testing.T) {
	uc := newCatalogUseCase(t)

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCatalog_Categories(t *testing.T) {
	uc := newCatalogUseCase(t)

	cats, err := uc.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 4)
	assert.Equal(t, "coffee", cats[0].ID)
}
