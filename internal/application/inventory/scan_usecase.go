package inventory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/despensa-api/internal/application/dto"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// ScanUseCase orquesta el flujo de un escaneo: Resolver obtiene/crea las
// filas, Recorder anexa la transacción y devuelve la cantidad derivada.
type ScanUseCase struct {
	resolver *Resolver
	recorder *Recorder
	itemRepo repository.ItemRepository
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(resolver *Resolver, recorder *Recorder, itemRepo repository.ItemRepository) *ScanUseCase {
	return &ScanUseCase{resolver: resolver, recorder: recorder, itemRepo: itemRepo}
}

// AddStock resuelve tipo, ubicación y artículo (por código si viene) y anexa
// una entrada. Devuelve el artículo afectado y su cantidad derivada.
func (uc *ScanUseCase) AddStock(ctx context.Context, in dto.AddStockRequest) (*dto.StockChangeResponse, error) {
	typeID, err := uc.resolver.ResolveTypeID(ctx, in.TypeName)
	if err != nil {
		return nil, err
	}
	locationID, err := uc.resolver.ResolveLocationID(ctx, in.LocationName)
	if err != nil {
		return nil, err
	}
	item, err := uc.resolver.ResolveItem(ctx, ItemSpec{
		Barcode:         in.Barcode,
		Name:            in.Name,
		Unit:            in.Unit,
		QuantityPerUnit: in.QuantityPerUnit,
		ItemTypeID:      typeID,
		LocationID:      locationID,
		Notes:           in.Notes,
	})
	if err != nil {
		return nil, err
	}
	current, err := uc.recorder.RecordIn(ctx, item.ID, in.Quantity, in.Notes)
	if err != nil {
		return nil, err
	}
	return &dto.StockChangeResponse{Success: true, ItemID: item.ID, CurrentQty: current}, nil
}

// Consume busca el artículo por código (404 si no existe) y anexa una salida
// si la cantidad alcanza.
func (uc *ScanUseCase) Consume(ctx context.Context, in dto.ConsumeRequest) (*dto.StockChangeResponse, error) {
	item, err := uc.itemRepo.GetByBarcode(strings.TrimSpace(in.Barcode))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	current, err := uc.recorder.RecordOut(ctx, item.ID, in.Quantity, in.Note)
	if err != nil {
		return nil, err
	}
	return &dto.StockChangeResponse{Success: true, ItemID: item.ID, CurrentQty: current}, nil
}

// Adjust anexa un ajuste con delta firmado sobre un artículo por id.
func (uc *ScanUseCase) Adjust(ctx context.Context, itemID string, delta decimal.Decimal, note string) error {
	if itemID == "" {
		return domain.ErrInvalidInput
	}
	return uc.recorder.RecordAdjust(ctx, itemID, delta, note)
}
