package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// ValidationError indica que una referencia o un campo del payload no es válido.
// Field identifica el campo ofensivo; Input lleva el payload enviado para que
// el cliente pueda re-mostrar el formulario.
type ValidationError struct {
	Field   string
	Message string
	Input   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError construye un ValidationError con campo y payload.
func NewValidationError(field, message string, input any) *ValidationError {
	return &ValidationError{Field: field, Message: message, Input: input}
}

// PermissionError indica que falló una comprobación de rol o de propiedad.
// No lleva ningún dato del recurso subyacente: cuando el fallo es puramente
// de rol no debe poder deducirse si el recurso existe.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

// NewPermissionError construye un PermissionError.
func NewPermissionError() *PermissionError {
	return &PermissionError{Message: "permisos insuficientes"}
}
