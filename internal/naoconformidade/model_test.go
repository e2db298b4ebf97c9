package naoconformidade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agora = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestFluxoNormal(t *testing.T) {
	nc := NaoConformidade{Status: StatusAberta, Severidade: SeveridadeMedia}

	require.NoError(t, nc.Transicionar(StatusEmAnalise, 1, agora))
	assert.Equal(t, StatusEmAnalise, nc.Status)

	require.NoError(t, nc.Transicionar(StatusPendenteAcao, 1, agora))
	require.NoError(t, nc.Transicionar(StatusFechada, 1, agora))
	assert.Equal(t, StatusFechada, nc.Status)
}

func TestFechamentoDiretoDeQualquerEstadoNaoFechado(t *testing.T) {
	for _, origem := range []string{StatusAberta, StatusEmAnalise, StatusPendenteAcao} {
		nc := NaoConformidade{Status: origem, Severidade: SeveridadeBaixa}
		require.NoError(t, nc.Transicionar(StatusFechada, 9, agora), origem)
		assert.Equal(t, StatusFechada, nc.Status)
	}
}

func TestGuardaSeveridadeAlta(t *testing.T) {
	nc := NaoConformidade{Status: StatusAberta, Severidade: SeveridadeAlta}

	err := nc.Transicionar(StatusFechada, 7, agora)
	require.ErrorIs(t, err, ErrFechamentoSemAcao)
	assert.NotEmpty(t, err.Error())
	// nada muta na rejeição
	assert.Equal(t, StatusAberta, nc.Status)
	assert.Nil(t, nc.FechadoPor)
	assert.Nil(t, nc.FechadoEm)

	racID := uint(55)
	nc.AcaoCorretivaID = &racID
	require.NoError(t, nc.Transicionar(StatusFechada, 7, agora))
	require.NotNil(t, nc.FechadoPor)
	require.NotNil(t, nc.FechadoEm)
	assert.Equal(t, uint(7), *nc.FechadoPor)
	assert.Equal(t, agora, *nc.FechadoEm)
}

func TestFechadaETerminal(t *testing.T) {
	nc := NaoConformidade{Status: StatusFechada}
	for _, destino := range []string{StatusAberta, StatusEmAnalise, StatusPendenteAcao, StatusFechada} {
		assert.ErrorIs(t, nc.Transicionar(destino, 1, agora), ErrTransicaoInvalida, destino)
	}
}

func TestTransicoesForaDaTabela(t *testing.T) {
	nc := NaoConformidade{Status: StatusAberta}
	assert.ErrorIs(t, nc.Transicionar(StatusPendenteAcao, 1, agora), ErrTransicaoInvalida)

	nc = NaoConformidade{Status: "INEXISTENTE"}
	assert.ErrorIs(t, nc.Transicionar(StatusFechada, 1, agora), ErrTransicaoInvalida)
}

func TestFechamentoSoCarimbaNoFechamento(t *testing.T) {
	nc := NaoConformidade{Status: StatusAberta, Severidade: SeveridadeMedia}
	require.NoError(t, nc.Transicionar(StatusEmAnalise, 3, agora))
	assert.Nil(t, nc.FechadoPor)
	assert.Nil(t, nc.FechadoEm)
}
