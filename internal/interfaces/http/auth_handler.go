package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/auth"
	"github.com/fleetflow/fleetflow-api/internal/application/dto"
)

// AuthHandler maneja el inicio de sesión.
type AuthHandler struct {
	uc *auth.Usecase
}

// NewAuthHandler construye el handler inyectando el caso de uso.
func NewAuthHandler(uc *auth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	token, user, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		User: dto.UserResponse{
			ID:        user.ID,
			CompanyID: user.CompanyID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	})
}
