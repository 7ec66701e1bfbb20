package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/despensa-api/internal/application/dto"
	"github.com/tu-usuario/despensa-api/internal/application/inventory"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// ItemUseCase consultas y edición administrativa de artículos.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	resolver *inventory.Resolver
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, resolver *inventory.Resolver) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, resolver: resolver}
}

// List devuelve todos los artículos con clasificación y cantidad derivada,
// ordenados por nombre asc. La suma por artículo sale de una sola lectura del
// ledger (agregación en la DB).
func (uc *ItemUseCase) List(ctx context.Context) (*dto.ListItemsResponse, error) {
	listings, err := uc.itemRepo.ListWithTotals()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemPayload, 0, len(listings))
	for i := range listings {
		items = append(items, toItemPayload(&listings[i]))
	}
	return &dto.ListItemsResponse{Success: true, Items: items}, nil
}

// FindByBarcode busca por código exacto (recortado). Ausente no es error:
// found=false.
func (uc *ItemUseCase) FindByBarcode(ctx context.Context, barcode string) (*dto.FindResponse, error) {
	listing, err := uc.itemRepo.GetListingByBarcode(strings.TrimSpace(barcode))
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return &dto.FindResponse{Success: true, Found: false}, nil
	}
	payload := toItemPayload(listing)
	return &dto.FindResponse{Success: true, Found: true, Item: &payload}, nil
}

// Update aplica una edición parcial: campos nil se conservan; los nombres de
// tipo/ubicación se resuelven lookup-or-create antes de escribir.
func (uc *ItemUseCase) Update(ctx context.Context, in dto.UpdateItemRequest) (*dto.UpdateItemResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.QuantityPerUnit != nil && in.QuantityPerUnit.IsPositive() {
		item.QuantityPerUnit = *in.QuantityPerUnit
	}
	if in.TypeName != nil {
		typeID, err := uc.resolver.ResolveTypeID(ctx, *in.TypeName)
		if err != nil {
			return nil, err
		}
		if typeID != nil {
			item.ItemTypeID = typeID
		}
	}
	if in.LocationName != nil {
		locationID, err := uc.resolver.ResolveLocationID(ctx, *in.LocationName)
		if err != nil {
			return nil, err
		}
		if locationID != nil {
			item.LocationID = locationID
		}
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return &dto.UpdateItemResponse{
		Success: true,
		Item: dto.ItemRecord{
			ID:              item.ID,
			Name:            item.Name,
			Barcode:         item.Barcode,
			Unit:            item.Unit,
			QuantityPerUnit: item.QuantityPerUnit,
			ItemTypeID:      item.ItemTypeID,
			LocationID:      item.LocationID,
			Notes:           item.Notes,
			Active:          item.Active,
		},
	}, nil
}

// Delete borrado administrativo: elimina el artículo y arrastra su ledger.
// Fuera del flujo de transacciones, que nunca borra nada.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

func toItemPayload(l *repository.ItemListing) dto.ItemPayload {
	return dto.ItemPayload{
		ID:              l.ID,
		Name:            l.Name,
		Barcode:         l.Barcode,
		Unit:            l.Unit,
		QuantityPerUnit: l.QuantityPerUnit,
		Active:          l.Active,
		TypeName:        l.TypeName,
		LocationName:    l.LocationName,
		Notes:           l.Notes,
		CurrentQty:      l.CurrentQty,
	}
}
