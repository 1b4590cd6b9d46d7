package validate

import (
	"unicode"

	"github.com/fleetflow/fleetflow-api/internal/domain"
)

const specialChars = "!@#$%^&*()-_=+[]|;:',.<>?/`~"

// Email comprueba el formato mínimo del email: contiene '@' y no lleva
// espacios en blanco.
func Email(input any, email string) error {
	if email == "" {
		return domain.NewValidationError("email", "el email es obligatorio", input)
	}
	hasAt := false
	for _, r := range email {
		if unicode.IsSpace(r) {
			return domain.NewValidationError("email", "el email no puede contener espacios", input)
		}
		if r == '@' {
			hasAt = true
		}
	}
	if !hasAt {
		return domain.NewValidationError("email", "el email debe contener '@'", input)
	}
	return nil
}

// Password comprueba que las dos contraseñas coinciden y que cumplen la
// complejidad mínima: 8 a 64 caracteres, sin espacios, con al menos una
// mayúscula, una minúscula, un dígito y un carácter especial.
func Password(input any, password1, password2 string) error {
	if password1 == "" || password2 == "" {
		return domain.NewValidationError("password1", "la contraseña es obligatoria", input)
	}
	if password1 != password2 {
		return domain.NewValidationError("password2", "las contraseñas no coinciden", input)
	}
	if len(password1) < 8 || len(password1) > 64 {
		return domain.NewValidationError("password1", "la contraseña debe tener entre 8 y 64 caracteres", input)
	}

	var upper, lower, digit, special bool
	for _, r := range password1 {
		switch {
		case unicode.IsSpace(r):
			return domain.NewValidationError("password1", "la contraseña no puede contener espacios", input)
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			for _, s := range specialChars {
				if r == s {
					special = true
					break
				}
			}
		}
	}
	switch {
	case !upper:
		return domain.NewValidationError("password1", "la contraseña debe contener al menos una mayúscula", input)
	case !lower:
		return domain.NewValidationError("password1", "la contraseña debe contener al menos una minúscula", input)
	case !digit:
		return domain.NewValidationError("password1", "la contraseña debe contener al menos un dígito", input)
	case !special:
		return domain.NewValidationError("password1", "la contraseña debe contener al menos un carácter especial", input)
	}
	return nil
}
