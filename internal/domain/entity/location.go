package entity

import "time"

// Location ubicación física de almacenamiento (despensa, nevera, bodega...).
type Location struct {
	ID        string
	Name      string // único, no vacío
	CreatedAt time.Time
}
