package usecase

import (
	"context"
	"strings"

	"github.com/tu-usuario/despensa-api/internal/application/dto"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// CatalogUseCase listado y alta de clasificaciones (tipos y ubicaciones).
// El alta usa el mismo upsert que el resolver: repetir un nombre devuelve el
// id existente en vez de fallar.
type CatalogUseCase struct {
	typeRepo     repository.ItemTypeRepository
	locationRepo repository.LocationRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(typeRepo repository.ItemTypeRepository, locationRepo repository.LocationRepository) *CatalogUseCase {
	return &CatalogUseCase{typeRepo: typeRepo, locationRepo: locationRepo}
}

// ListTypes todos los tipos, nombre asc.
func (uc *CatalogUseCase) ListTypes(ctx context.Context) (*dto.ListTypesResponse, error) {
	types, err := uc.typeRepo.List()
	if err != nil {
		return nil, err
	}
	entries := make([]dto.NamedEntry, 0, len(types))
	for _, t := range types {
		entries = append(entries, dto.NamedEntry{ID: t.ID, Name: t.Name})
	}
	return &dto.ListTypesResponse{Success: true, Types: entries}, nil
}

// CreateType resuelve (o crea) un tipo por nombre y devuelve su id.
func (uc *CatalogUseCase) CreateType(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	t, err := uc.typeRepo.UpsertByName(name)
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

// ListLocations todas las ubicaciones, nombre asc.
func (uc *CatalogUseCase) ListLocations(ctx context.Context) (*dto.ListLocationsResponse, error) {
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	entries := make([]dto.NamedEntry, 0, len(locations))
	for _, l := range locations {
		entries = append(entries, dto.NamedEntry{ID: l.ID, Name: l.Name})
	}
	return &dto.ListLocationsResponse{Success: true, Locations: entries}, nil
}

// CreateLocation resuelve (o crea) una ubicación por nombre y devuelve su id.
func (uc *CatalogUseCase) CreateLocation(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	l, err := uc.locationRepo.UpsertByName(name)
	if err != nil {
		return "", err
	}
	return l.ID, nil
}
