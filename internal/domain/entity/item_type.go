package entity

import "time"

// ItemType clasificación de artículos (una fila por nombre distinto).
type ItemType struct {
	ID        string
	Name      string // único, no vacío
	CreatedAt time.Time
}
