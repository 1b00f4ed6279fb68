package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/sekolahku/inventaris-api/pkg/jwt"
)

const (
	secret = "unit-test-secret"
	userID = "00000000-0000-0000-0000-000000000001"
	issuer = "inventaris-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "Kepala Sekolah", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotUserID, gotRole, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "Kepala Sekolah", gotRole)
}

func TestParse_ExpiredToken(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "Admin", issuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "Admin", issuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("another-secret-entirely", tok)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", userID, "Admin", issuer, 60)
	assert.Error(t, err)
}
