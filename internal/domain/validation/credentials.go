// Package validation contiene las reglas de entrada para el registro de cuentas.
// Todas las reglas se evalúan siempre; el resultado es la lista completa de violaciones.
package validation

import (
	"unicode"

	"github.com/asaskevich/govalidator"
)

// Mensajes de violación (se devuelven tal cual al cliente).
const (
	MsgAllFieldsRequired  = "All fields are required"
	MsgInvalidEmailFormat = "Invalid email format"
	MsgWeakPassword       = "Password must be at least 8 characters long and contain numbers and special characters"
)

// PasswordPolicy reglas mínimas de fortaleza de contraseña.
type PasswordPolicy struct {
	MinLength    int
	MinNumbers   int
	MinSymbols   int
	MinLowercase int
	MinUppercase int
}

// DefaultPasswordPolicy: al menos 8 caracteres, un dígito y un carácter especial.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:  8,
	MinNumbers: 1,
	MinSymbols: 1,
}

// IsStrong indica si password cumple la política.
func (p PasswordPolicy) IsStrong(password string) bool {
	var length, numbers, symbols, lower, upper int
	for _, r := range password {
		length++
		switch {
		case r >= '0' && r <= '9':
			numbers++
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case !unicode.IsLetter(r):
			symbols++
		}
	}
	return length >= p.MinLength &&
		numbers >= p.MinNumbers &&
		symbols >= p.MinSymbols &&
		lower >= p.MinLowercase &&
		upper >= p.MinUppercase
}

// ValidateCredentials valida los datos de registro con la política por defecto.
func ValidateCredentials(name, email, password string) []string {
	return ValidateCredentialsWithPolicy(name, email, password, DefaultPasswordPolicy)
}

// ValidateCredentialsWithPolicy evalúa todas las reglas y devuelve las violaciones
// encontradas (vacío = válido). Sin efectos secundarios.
func ValidateCredentialsWithPolicy(name, email, password string, policy PasswordPolicy) []string {
	violations := []string{}
	if name == "" || email == "" || password == "" {
		violations = append(violations, MsgAllFieldsRequired)
	}
	if !govalidator.IsEmail(email) {
		violations = append(violations, MsgInvalidEmailFormat)
	}
	if !policy.IsStrong(password) {
		violations = append(violations, MsgWeakPassword)
	}
	return violations
}
