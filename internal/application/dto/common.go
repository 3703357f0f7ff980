package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse cuerpo de respuesta al crear un recurso.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
