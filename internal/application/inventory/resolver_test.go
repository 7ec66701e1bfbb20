package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/despensa-api/internal/application/inventory"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
)

func newResolverFixture() (*inventory.Resolver, *fakeItemRepo, *fakeTypeRepo, *fakeLocationRepo) {
	items := newFakeItemRepo()
	types := newFakeTypeRepo()
	locations := newFakeLocationRepo()
	return inventory.NewResolver(items, types, locations), items, types, locations
}

// TestResolveTypeID_Idempotente resolver "Produce" dos veces devuelve el
// mismo id y crea una sola fila.
func TestResolveTypeID_Idempotente(t *testing.T) {
	r, _, types, _ := newResolverFixture()
	ctx := context.Background()

	first, err := r.ResolveTypeID(ctx, "Produce")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := r.ResolveTypeID(ctx, "Produce")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.Len(t, types.byName, 1, "a lo sumo una fila por nombre")
}

func TestResolveTypeID_NombreVacio(t *testing.T) {
	r, _, types, _ := newResolverFixture()

	id, err := r.ResolveTypeID(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, id, "sin nombre no se clasifica ni se crea nada")
	assert.Empty(t, types.byName)
}

// TestResolveItem_ReutilizaPorCodigo un código ya registrado devuelve el
// artículo existente e ignora los demás campos enviados.
func TestResolveItem_ReutilizaPorCodigo(t *testing.T) {
	r, items, _, _ := newResolverFixture()
	code := "7701234567890"
	existing := &entity.Item{ID: uuid.New().String(), Name: "Arroz", Barcode: &code, Unit: "each", Active: true}
	items.add(existing)

	got, err := r.ResolveItem(context.Background(), inventory.ItemSpec{
		Barcode: " 7701234567890 ", // se recorta antes de comparar
		Name:    "Otro nombre",
		Unit:    "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Arroz", got.Name, "los campos del request no pisan el artículo existente")
	assert.Len(t, items.items, 1)
}

// TestResolveItem_SinCodigoSiempreCrea sin código de barras cada resolución
// crea un artículo nuevo.
func TestResolveItem_SinCodigoSiempreCrea(t *testing.T) {
	r, items, _, _ := newResolverFixture()
	ctx := context.Background()

	a, err := r.ResolveItem(ctx, inventory.ItemSpec{Name: "Granel"})
	require.NoError(t, err)
	b, err := r.ResolveItem(ctx, inventory.ItemSpec{Name: "Granel"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Nil(t, a.Barcode)
	assert.Len(t, items.items, 2)
}

// TestResolveItem_ValoresPorDefecto unit "each", quantity_per_unit 1 y
// active=true cuando el request no los trae.
func TestResolveItem_ValoresPorDefecto(t *testing.T) {
	r, _, _, _ := newResolverFixture()

	got, err := r.ResolveItem(context.Background(), inventory.ItemSpec{Barcode: "111", Name: "Sal"})
	require.NoError(t, err)
	assert.Equal(t, "each", got.Unit)
	assert.True(t, got.QuantityPerUnit.Equal(decimal.NewFromInt(1)))
	assert.True(t, got.Active)
	require.NotNil(t, got.Barcode)
	assert.Equal(t, "111", *got.Barcode)
}

// TestResolveItem_CarreraDeCreacion si el insert pierde contra otro creador
// concurrente, se relee por código y se reutiliza la fila superviviente.
func TestResolveItem_CarreraDeCreacion(t *testing.T) {
	r, items, _, _ := newResolverFixture()
	code := "555"
	survivor := &entity.Item{ID: uuid.New().String(), Name: "Café", Barcode: &code, Active: true}

	// El not-found inicial pasa, el insert pierde con duplicado y para
	// entonces el otro escritor ya dejó su fila visible.
	items.missFirstLookup = true
	items.createErr = domain.ErrDuplicate
	items.add(survivor)

	got, err := r.ResolveItem(context.Background(), inventory.ItemSpec{Barcode: "555", Name: "Café importado"})
	require.NoError(t, err, "perder la carrera no debe ser fatal")
	assert.Equal(t, survivor.ID, got.ID)
	assert.Len(t, items.items, 1, "sobrevive exactamente una fila por código")
}
