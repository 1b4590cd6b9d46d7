package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/fleetflow/fleetflow-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "fleetflow-test"
)

func TestGenerateYParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "c-1", "manager", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, companyID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "c-1", companyID)
	assert.Equal(t, "manager", role)
}

func TestGenerate_SinSecretFalla(t *testing.T) {
	_, err := pkgjwt.Generate("", "u-1", "c-1", "admin", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_SecretIncorrectoFalla(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "", "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpiradoFalla(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "c-1", "worker", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token ya vencido debe rechazarse")
}

func TestParse_TokenManipuladoFalla(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "c-1", "worker", testIssuer, 60)
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, _, _, err = pkgjwt.Parse(testSecret, tampered)
	assert.Error(t, err)
}

func TestParse_CompanyVaciaParaAdmin(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-adm", "", "admin", testIssuer, 60)
	require.NoError(t, err)

	_, companyID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Empty(t, companyID, "un admin sin empresa viaja con company_id vacío")
	assert.Equal(t, "admin", role)
}
