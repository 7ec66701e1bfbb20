package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)
var _ repository.LocationRepository = (*LocationRepo)(nil)

// ItemTypeRepo implementación de ItemTypeRepository sobre PostgreSQL.
type ItemTypeRepo struct {
	q Querier
}

// NewItemTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemTypeRepository(q Querier) *ItemTypeRepo {
	return &ItemTypeRepo{q: q}
}

// UpsertByName resuelve el nombre a su fila, creándola si no existe.
// El DO UPDATE no-op hace que el RETURNING devuelva también la fila existente,
// así dos resoluciones concurrentes del mismo nombre nuevo convergen en un id.
func (r *ItemTypeRepo) UpsertByName(name string) (*entity.ItemType, error) {
	query := `
		INSERT INTO item_types (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`
	var t entity.ItemType
	err := r.q.QueryRow(context.Background(), query, uuid.New().String(), name).Scan(
		&t.ID, &t.Name, &t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert item type: %w", err)
	}
	return &t, nil
}

// List todos los tipos, nombre asc.
func (r *ItemTypeRepo) List() ([]*entity.ItemType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM item_types ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}
	defer rows.Close()

	var list []*entity.ItemType
	for rows.Next() {
		var t entity.ItemType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// UpsertByName resuelve el nombre a su fila, creándola si no existe
// (ver ItemTypeRepo.UpsertByName).
func (r *LocationRepo) UpsertByName(name string) (*entity.Location, error) {
	query := `
		INSERT INTO locations (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, uuid.New().String(), name).Scan(
		&l.ID, &l.Name, &l.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert location: %w", err)
	}
	return &l, nil
}

// List todas las ubicaciones, nombre asc.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
