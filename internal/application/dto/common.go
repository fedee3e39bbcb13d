package dto

// ErrorResponse cuerpo de error HTTP.
// Detail lleva el diagnóstico del almacenamiento (mensaje + SQLSTATE) cuando existe.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
