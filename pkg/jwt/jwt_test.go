package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkgjwt "github.com/tu-usuario/pos-pro/pkg/jwt"
)

const (
	testSecret = "secret-para-tests-unitarios"
	testIssuer = "pos-pro-test"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "cajero", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "cajero", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", testIssuer, 60)
	assert.Error(t, err)
}
