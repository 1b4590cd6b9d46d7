// Package auth implementa el inicio de sesión y la emisión de tokens.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/pkg/jwt"
)

// Usecase autentica usuarios contra el repositorio y firma tokens JWT.
type Usecase struct {
	users      repository.UserRepository
	secret     string
	issuer     string
	expMinutes int
}

func NewUsecase(users repository.UserRepository, secret, issuer string, expMinutes int) *Usecase {
	return &Usecase{
		users:      users,
		secret:     secret,
		issuer:     issuer,
		expMinutes: expMinutes,
	}
}

// Login valida email y contraseña y devuelve el token firmado junto al
// usuario. Credenciales incorrectas devuelven ErrInvalidCredentials sin
// distinguir si el email existe.
func (uc *Usecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.secret, user.ID, user.CompanyID, string(user.Role), uc.issuer, uc.expMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
