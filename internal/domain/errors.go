package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("no hay suficiente stock para esta salida")
	ErrImportParse       = errors.New("error al importar el archivo, verifica el formato CSV")
	ErrPersistence       = errors.New("no se pudo persistir el estado")
)

// ValidationError lista los campos obligatorios faltantes o inválidos de una operación.
// Se compara con errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Fields []string
}

// NewValidationError construye el error con los campos indicados.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	return "por favor completa todos los campos obligatorios: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Add agrega un campo inválido.
func (e *ValidationError) Add(field string) {
	e.Fields = append(e.Fields, field)
}

// OrNil devuelve nil si no hay campos registrados.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
