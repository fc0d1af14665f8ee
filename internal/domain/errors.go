package domain

import (
	"errors"
	"strings"

	"go.uber.org/multierr"
)

// Errores de dominio. Los mensajes son los que recibe el cliente de la API.
var (
	ErrUserAlreadyExists  = errors.New("User already exists")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrMissingBikeFields  = errors.New("Missing required fields: type and color")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidBikeType    = errors.New("tipo de bicicleta inválido")
)

// Mensajes genéricos de persistencia (la causa real solo va al log).
const (
	MsgRegisterUser = "Error registering user"
	MsgLoginUser    = "Error logging in"
	MsgCreateBike   = "Error creating bike"
	MsgCreateOrder  = "Error creating order"
)

// ValidationError agrupa todas las violaciones detectadas en la entrada.
type ValidationError struct {
	err error
}

// NewValidationError construye el error a partir de la lista de violaciones.
// Devuelve nil si la lista está vacía.
func NewValidationError(violations []string) *ValidationError {
	var combined error
	for _, v := range violations {
		combined = multierr.Append(combined, errors.New(v))
	}
	if combined == nil {
		return nil
	}
	return &ValidationError{err: combined}
}

// Violations devuelve las violaciones en el orden en que se detectaron.
func (e *ValidationError) Violations() []string {
	errs := multierr.Errors(e.err)
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations(), ", ")
}

// PersistenceError oculta el error del almacenamiento detrás de un mensaje genérico.
// Unwrap conserva la causa para logs y errors.Is.
type PersistenceError struct {
	Message string
	cause   error
}

// NewPersistenceError envuelve cause con el mensaje público msg.
func NewPersistenceError(msg string, cause error) *PersistenceError {
	return &PersistenceError{Message: msg, cause: cause}
}

func (e *PersistenceError) Error() string { return e.Message }

func (e *PersistenceError) Unwrap() error { return e.cause }

// IsClientError indica si err es un error de dominio que la API devuelve como 400.
func IsClientError(err error) bool {
	var ve *ValidationError
	var pe *PersistenceError
	switch {
	case errors.As(err, &ve), errors.As(err, &pe):
		return true
	case errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingBikeFields):
		return true
	}
	return false
}
