package repository

import "github.com/tu-usuario/despensa-api/internal/domain/entity"

// ItemTypeRepository puerto de persistencia para clasificaciones por tipo.
type ItemTypeRepository interface {
	// UpsertByName resuelve un nombre a su fila, creándola si no existe.
	// Atómico: dos llamadas concurrentes con el mismo nombre nuevo convergen
	// en la misma fila (insert-if-absent en la capa de almacenamiento).
	UpsertByName(name string) (*entity.ItemType, error)
	List() ([]*entity.ItemType, error)
}

// LocationRepository puerto de persistencia para ubicaciones.
type LocationRepository interface {
	UpsertByName(name string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}
