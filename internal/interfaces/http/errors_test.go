package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-api/internal/domain"
)

// respondWith monta una ruta que siempre falla con err y devuelve la respuesta.
func respondWith(t *testing.T, err error) *http.Response {
	t.Helper()
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, reqErr)
	return resp
}

func TestRespondError_CategoriasPorTipo(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", domain.NewValidationError("email", "el email ya está registrado", nil), http.StatusUnprocessableEntity, "VALIDATION"},
		{"permiso", domain.NewPermissionError(), http.StatusForbidden, "FORBIDDEN"},
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"credenciales", domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := respondWith(t, tc.err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

// El email duplicado pertenece a la categoría de validación: nunca sale como
// conflicto, ni siquiera cuando el centinela crudo llega hasta el handler.
func TestRespondError_EmailDuplicadoEs422(t *testing.T) {
	resp := respondWith(t, domain.ErrEmailAlreadyExists)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode,
		"el email duplicado debe responder 422, no 409")
}
