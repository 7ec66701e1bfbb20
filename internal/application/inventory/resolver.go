package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// Resolver mapea nombres de clasificación y códigos de barras a filas
// estables, creándolas en el primer uso (lookup-or-create idempotente).
type Resolver struct {
	itemRepo     repository.ItemRepository
	typeRepo     repository.ItemTypeRepository
	locationRepo repository.LocationRepository
}

// NewResolver construye el resolver.
func NewResolver(
	itemRepo repository.ItemRepository,
	typeRepo repository.ItemTypeRepository,
	locationRepo repository.LocationRepository,
) *Resolver {
	return &Resolver{itemRepo: itemRepo, typeRepo: typeRepo, locationRepo: locationRepo}
}

// ResolveTypeID resuelve un nombre de tipo a su id. Nombre vacío → nil (el
// artículo queda sin clasificar). El upsert es atómico en la capa de
// almacenamiento, así que llamadas concurrentes convergen en la misma fila.
func (r *Resolver) ResolveTypeID(ctx context.Context, name string) (*string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	t, err := r.typeRepo.UpsertByName(name)
	if err != nil {
		return nil, err
	}
	return &t.ID, nil
}

// ResolveLocationID resuelve un nombre de ubicación a su id (ver ResolveTypeID).
func (r *Resolver) ResolveLocationID(ctx context.Context, name string) (*string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	l, err := r.locationRepo.UpsertByName(name)
	if err != nil {
		return nil, err
	}
	return &l.ID, nil
}

// ItemSpec campos para crear un artículo cuando el código no resuelve a uno
// existente.
type ItemSpec struct {
	Barcode         string // se recorta; vacío → siempre crea uno nuevo
	Name            string
	Unit            string
	QuantityPerUnit decimal.Decimal
	ItemTypeID      *string
	LocationID      *string
	Notes           string
}

// ResolveItem resuelve un código de barras a un artículo, creándolo si no
// existe. Si el código ya tiene dueño, se reutiliza e ignoran los demás
// campos. Sin código, siempre se crea un artículo nuevo.
//
// Carrera creador-creador: si dos llamadas pasan el not-found y ambas
// intentan insertar, la constraint única decide; el perdedor relee por código
// y reutiliza la fila superviviente.
func (r *Resolver) ResolveItem(ctx context.Context, spec ItemSpec) (*entity.Item, error) {
	barcode := strings.TrimSpace(spec.Barcode)
	if barcode != "" {
		existing, err := r.itemRepo.GetByBarcode(barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	item := r.newItem(spec, barcode)
	err := r.itemRepo.Create(item)
	if err == nil {
		return item, nil
	}
	if barcode != "" && err == domain.ErrDuplicate {
		survivor, getErr := r.itemRepo.GetByBarcode(barcode)
		if getErr != nil {
			return nil, getErr
		}
		if survivor != nil {
			return survivor, nil
		}
	}
	return nil, err
}

func (r *Resolver) newItem(spec ItemSpec, barcode string) *entity.Item {
	unit := spec.Unit
	if unit == "" {
		unit = "each"
	}
	qpu := spec.QuantityPerUnit
	if !qpu.GreaterThan(decimal.Zero) {
		qpu = decimal.NewFromInt(1)
	}
	var bc *string
	if barcode != "" {
		bc = &barcode
	}
	now := time.Now()
	return &entity.Item{
		ID:              uuid.New().String(),
		Name:            spec.Name,
		Barcode:         bc,
		Unit:            unit,
		QuantityPerUnit: qpu,
		ItemTypeID:      spec.ItemTypeID,
		LocationID:      spec.LocationID,
		Notes:           spec.Notes,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
