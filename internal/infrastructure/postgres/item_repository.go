package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable
// con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, barcode, unit, quantity_per_unit, item_type_id, location_id, notes, active, created_at, updated_at`

// Create persiste un artículo nuevo. Un código de barras ya tomado devuelve
// ErrDuplicate (la constraint única es el árbitro ante creaciones en carrera).
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Barcode, item.Unit, item.QuantityPerUnit,
		item.ItemTypeID, item.LocationID, item.Notes, item.Active,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por id. nil,nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByBarcode obtiene un artículo por código exacto. nil,nil si no existe.
func (r *ItemRepo) GetByBarcode(barcode string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE barcode = $1`, barcode)
}

// GetForUpdate obtiene el artículo y bloquea su fila (SELECT FOR UPDATE) para
// serializar escrituras concurrentes sobre su ledger. Usar dentro de tx.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) getOne(query string, arg any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.Name, &it.Barcode, &it.Unit, &it.QuantityPerUnit,
		&it.ItemTypeID, &it.LocationID, &it.Notes, &it.Active,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza los campos editables del artículo. El código de barras no
// se toca (identidad del artículo tras el primer escaneo).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, unit = $3, quantity_per_unit = $4, item_type_id = $5,
		    location_id = $6, notes = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.QuantityPerUnit,
		item.ItemTypeID, item.LocationID, item.Notes, item.Active, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo; ON DELETE CASCADE arrastra sus transacciones.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

const listingQuery = `
	SELECT i.id, i.name, i.barcode, i.unit, i.quantity_per_unit, i.notes, i.active,
	       t.name AS type_name, l.name AS location_name,
	       COALESCE(s.total, 0) AS current_qty
	FROM items i
	LEFT JOIN item_types t ON t.id = i.item_type_id
	LEFT JOIN locations l ON l.id = i.location_id
	LEFT JOIN (
		SELECT item_id, SUM(delta) AS total
		FROM transactions
		GROUP BY item_id
	) s ON s.item_id = i.id`

// ListWithTotals lista todos los artículos con nombres de clasificación y
// cantidad derivada, nombre asc. La suma sale de una sola pasada sobre el
// ledger (agregada en la subconsulta); nunca de un contador almacenado.
func (r *ItemRepo) ListWithTotals() ([]repository.ItemListing, error) {
	rows, err := r.q.Query(context.Background(), listingQuery+` ORDER BY i.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []repository.ItemListing
	for rows.Next() {
		var l repository.ItemListing
		if err := rows.Scan(&l.ID, &l.Name, &l.Barcode, &l.Unit, &l.QuantityPerUnit,
			&l.Notes, &l.Active, &l.TypeName, &l.LocationName, &l.CurrentQty); err != nil {
			return nil, fmt.Errorf("scan item listing: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// GetListingByBarcode variante de ListWithTotals para un solo código.
// nil,nil si no existe.
func (r *ItemRepo) GetListingByBarcode(barcode string) (*repository.ItemListing, error) {
	var l repository.ItemListing
	err := r.q.QueryRow(context.Background(), listingQuery+` WHERE i.barcode = $1`, barcode).Scan(
		&l.ID, &l.Name, &l.Barcode, &l.Unit, &l.QuantityPerUnit,
		&l.Notes, &l.Active, &l.TypeName, &l.LocationName, &l.CurrentQty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item listing: %w", err)
	}
	return &l, nil
}
