package dto

// NamedEntry una clasificación (tipo o ubicación) para listados.
type NamedEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateNamedRequest body para POST /api/inventory/types y /locations.
type CreateNamedRequest struct {
	Name string `json:"name"`
}

// CreateNamedResponse id de la fila resuelta (existente o recién creada).
type CreateNamedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ListTypesResponse respuesta de GET /api/inventory/types.
type ListTypesResponse struct {
	Success bool         `json:"success"`
	Types   []NamedEntry `json:"types"`
}

// ListLocationsResponse respuesta de GET /api/inventory/locations.
type ListLocationsResponse struct {
	Success   bool         `json:"success"`
	Locations []NamedEntry `json:"locations"`
}
