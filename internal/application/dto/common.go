package dto

// ErrorResponse cuerpo de error HTTP: código estable para clientes y mensaje
// legible para humanos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
