package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// StorageError falla del almacenamiento subyacente (conexión, constraint ajeno al upsert).
// Conserva el código SQLSTATE y el mensaje del driver para que la capa de presentación
// pueda loguear el diagnóstico sin depender de pgx.
type StorageError struct {
	Op      string // operación que falló, ej. "merge lot"
	Code    string // SQLSTATE si está disponible, vacío si no
	Message string
	Err     error
}

// Error implementa error.
func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (sqlstate %s)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap expone la causa para errors.Is/As.
func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError construye un StorageError a partir de la causa.
func NewStorageError(op, code string, err error) *StorageError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &StorageError{Op: op, Code: code, Message: msg, Err: err}
}
