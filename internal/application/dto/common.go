package dto

// ErrorResponse cuerpo de error HTTP. El mensaje se pasa como string tal cual
// (el cliente lo muestra en una notificación transitoria, sin parsearlo).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse respuesta mínima de operaciones sin payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
