package dashboard

import (
	"testing"
	"time"

	"github.com/GraoForte/portal-api/internal/atividade"
	"github.com/GraoForte/portal-api/internal/oportunidade"
	"github.com/GraoForte/portal-api/internal/vendedor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agora = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestResumoListaVazia(t *testing.T) {
	r := CalcularResumo(nil, agora)
	assert.Zero(t, r.TaxaConversao, "taxa de conversão nunca é NaN")
	assert.Zero(t, r.TicketMedio, "ticket médio nunca é NaN")
	assert.Zero(t, r.ValorPipeline)
}

func TestResumoBasico(t *testing.T) {
	opps := []oportunidade.Oportunidade{
		{Estagio: oportunidade.EstagioPerdida, ValorEstimado: 100},
		{Estagio: oportunidade.EstagioFechadaGanha, ValorEstimado: 200},
		{Estagio: oportunidade.EstagioEmAnalise, Status: oportunidade.StatusAberta, ValorEstimado: 300},
	}
	r := CalcularResumo(opps, agora)
	assert.Equal(t, 300.0, r.ValorPipeline)
	assert.Equal(t, 200.0, r.ValorFechado)
	assert.Equal(t, 1, r.Perdidas)
	assert.Equal(t, 1, r.Fechadas)
	assert.InDelta(t, 33.33, r.TaxaConversao, 0.01)
	assert.Equal(t, 200.0, r.TicketMedio)
}

func TestResumoFechadasNoMes(t *testing.T) {
	opps := []oportunidade.Oportunidade{
		{Estagio: oportunidade.EstagioFechadaGanha, ValorEstimado: 100, CreatedAt: agora.AddDate(0, 0, -5)},
		{Estagio: oportunidade.EstagioFechadaGanha, ValorEstimado: 500, CreatedAt: agora.AddDate(0, -2, 0)},
	}
	r := CalcularResumo(opps, agora)
	assert.Equal(t, 2, r.Fechadas)
	assert.Equal(t, 1, r.FechadasNoMes)
	assert.Equal(t, 100.0, r.ValorFechadoNoMes)
}

func TestDistribuicaoNormalizaEOmiteAusentes(t *testing.T) {
	opps := []oportunidade.Oportunidade{
		{Estagio: oportunidade.EstagioProspeccao, ValorEstimado: 100},
		{Estagio: oportunidade.EstagioProposta, ValorEstimado: 100},
		{Estagio: oportunidade.EstagioNegociacao, ValorEstimado: 50},
	}
	faixas := DistribuicaoPorEstagio(opps)
	require.Len(t, faixas, 2, "estágios sem registro são omitidos")

	// ordem de prioridade fixa: IN_ANALYSIS antes de NEGOTIATION
	assert.Equal(t, oportunidade.EstagioEmAnalise, faixas[0].Estagio)
	assert.Equal(t, 2, faixas[0].Quantidade)
	assert.Equal(t, 200.0, faixas[0].Valor)
	assert.Equal(t, 100.0, faixas[0].Percentual)

	assert.Equal(t, oportunidade.EstagioNegociacao, faixas[1].Estagio)
	assert.Equal(t, 25.0, faixas[1].Percentual)
}

func TestDistribuicaoValoresZerados(t *testing.T) {
	// divisor mínimo 1 evita divisão por zero quando todos os valores são 0
	faixas := DistribuicaoPorEstagio([]oportunidade.Oportunidade{
		{Estagio: oportunidade.EstagioTeste, ValorEstimado: 0},
	})
	require.Len(t, faixas, 1)
	assert.Equal(t, 0.0, faixas[0].Percentual)
}

func TestDivisaoPorProduto(t *testing.T) {
	opps := []oportunidade.Oportunidade{
		{Produto: "Tombador 21m", ValorEstimado: 500, Estagio: oportunidade.EstagioFechadaGanha},
		{Produto: "Tombador 21m", ValorEstimado: 300},
		{Produto: "", ValorEstimado: 900},
	}
	faixas := DivisaoPorProduto(opps)
	require.Len(t, faixas, 2)
	assert.Equal(t, ProdutoOutros, faixas[0].Produto, "ordenado por valor total desc")
	assert.Equal(t, 900.0, faixas[0].ValorTotal)
	assert.Equal(t, "Tombador 21m", faixas[1].Produto)
	assert.Equal(t, 800.0, faixas[1].ValorTotal)
	assert.Equal(t, 500.0, faixas[1].ValorFechado)
}

func TestRankingVendedoresPorNome(t *testing.T) {
	vendedores := []vendedor.Vendedor{
		{ID: 1, Nome: "Ana"},
		{ID: 2, Nome: "Bruno"},
		{ID: 3, Nome: "Carla"},
	}
	opps := []oportunidade.Oportunidade{
		{Vendedor: "Ana", Status: oportunidade.StatusAberta, ValorEstimado: 50},
		{Vendedor: "Bruno", Status: oportunidade.StatusAberta, ValorEstimado: 200},
		{Vendedor: "Carla", Status: oportunidade.StatusAberta, ValorEstimado: 10},
		{Vendedor: "Bruno", Estagio: oportunidade.EstagioFechadaGanha, ValorEstimado: 80},
	}
	ranking := RankingVendedores(vendedores, opps)
	require.Len(t, ranking, 3)
	assert.Equal(t, []float64{200, 50, 10}, []float64{
		ranking[0].ValorAtivo, ranking[1].ValorAtivo, ranking[2].ValorAtivo,
	})
	assert.Equal(t, "Bruno", ranking[0].Nome)
	assert.Equal(t, 80.0, ranking[0].ValorFechado)
}

func TestOportunidadesRecentes(t *testing.T) {
	var opps []oportunidade.Oportunidade
	for i := 0; i < 10; i++ {
		opps = append(opps, oportunidade.Oportunidade{
			ID:        uint(i + 1),
			CreatedAt: agora.AddDate(0, 0, -i),
		})
	}
	recentes := OportunidadesRecentes(opps, 8)
	require.Len(t, recentes, 8)
	assert.Equal(t, uint(1), recentes[0].ID, "mais nova primeiro")
	assert.Equal(t, uint(8), recentes[7].ID)
}

func TestProximasAtividadesSentinela(t *testing.T) {
	amanha := agora.AddDate(0, 0, 1)
	semana := agora.AddDate(0, 0, 5)
	atividades := []atividade.Atividade{
		{ID: 1, DataPrevista: nil},
		{ID: 2, DataPrevista: &semana},
		{ID: 3, DataPrevista: &amanha},
		{ID: 4, Concluida: true, DataPrevista: &amanha},
	}
	proximas := ProximasAtividades(atividades, 6)
	require.Len(t, proximas, 3, "concluídas ficam de fora")
	assert.Equal(t, uint(3), proximas[0].ID)
	assert.Equal(t, uint(2), proximas[1].ID)
	assert.Equal(t, uint(1), proximas[2].ID, "sem data ordena por último")
}

func TestProximasAtividadesLimite(t *testing.T) {
	var atividades []atividade.Atividade
	for i := 0; i < 9; i++ {
		d := agora.AddDate(0, 0, i)
		atividades = append(atividades, atividade.Atividade{ID: uint(i + 1), DataPrevista: &d})
	}
	assert.Len(t, ProximasAtividades(atividades, 6), 6)
}
