package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToNumero(t *testing.T) {
	assert.Equal(t, 0.0, ToNumero(nil))
	assert.Equal(t, 0.0, ToNumero("abc"))
	assert.Equal(t, 12.5, ToNumero("12.5"))
	assert.Equal(t, 7.0, ToNumero(7))
	assert.Equal(t, 7.0, ToNumero(7.0))
	assert.Equal(t, 0.0, ToNumero(struct{}{}))
	assert.Equal(t, 100.0, ToNumero(" 100 "))
}

func TestFormatarMoeda(t *testing.T) {
	assert.Equal(t, "R$ 1.234,50", FormatarMoeda(1234.5))
	assert.Equal(t, "R$ 0,00", FormatarMoeda(0))
}

func TestFormatarMoedaCurta(t *testing.T) {
	assert.Equal(t, "R$ 1,2 mi", FormatarMoedaCurta(1_200_000))
	assert.Equal(t, "R$ 3,5 mil", FormatarMoedaCurta(3_500))
	assert.Equal(t, "R$ 2,0 bi", FormatarMoedaCurta(2_000_000_000))
	assert.Equal(t, "R$ 999,00", FormatarMoedaCurta(999))
}

func TestFormatarData(t *testing.T) {
	d := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2025", FormatarData(d))
}
