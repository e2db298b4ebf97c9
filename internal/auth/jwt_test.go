package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	tok, err := GerarToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseAndValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestTokenAdulterado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	tok, err := GerarToken(7, false)
	require.NoError(t, err)

	_, err = ParseAndValidate(tok + "x")
	assert.Error(t, err)
}

func TestSemSegredo(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GerarToken(1, false)
	assert.Error(t, err)
}
