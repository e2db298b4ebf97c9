// internal/dashboard/resumo.go
//
// Agregação pura sobre o pipeline: tudo aqui é recomputado a cada chamada a
// partir das listas completas, sem cache.
package dashboard

import (
	"sort"
	"time"

	"github.com/GraoForte/portal-api/internal/atividade"
	"github.com/GraoForte/portal-api/internal/oportunidade"
	"github.com/GraoForte/portal-api/internal/vendedor"
)

// ProdutoOutros é o balde usado quando a oportunidade não informa produto.
const ProdutoOutros = "OTHER"

type Resumo struct {
	TotalOportunidades int     `json:"total_oportunidades"`
	Ativas             int     `json:"ativas"`
	Fechadas           int     `json:"fechadas"`
	Perdidas           int     `json:"perdidas"`
	ValorPipeline      float64 `json:"valor_pipeline"`
	ValorFechado       float64 `json:"valor_fechado"`
	TaxaConversao      float64 `json:"taxa_conversao"`
	TicketMedio        float64 `json:"ticket_medio"`
	FechadasNoMes      int     `json:"fechadas_no_mes"`
	ValorFechadoNoMes  float64 `json:"valor_fechado_no_mes"`
}

type FaixaEstagio struct {
	Estagio    string  `json:"estagio"`
	Rotulo     string  `json:"rotulo"`
	Cor        string  `json:"cor"`
	Quantidade int     `json:"quantidade"`
	Valor      float64 `json:"valor"`
	Percentual float64 `json:"percentual"`
}

type FaixaProduto struct {
	Produto      string  `json:"produto"`
	Quantidade   int     `json:"quantidade"`
	ValorTotal   float64 `json:"valor_total"`
	ValorFechado float64 `json:"valor_fechado"`
}

type PosicaoVendedor struct {
	VendedorID   uint    `json:"vendedor_id"`
	Nome         string  `json:"nome"`
	Ativas       int     `json:"ativas"`
	ValorAtivo   float64 `json:"valor_ativo"`
	Fechadas     int     `json:"fechadas"`
	ValorFechado float64 `json:"valor_fechado"`
}

// CalcularResumo deriva os cards principais. Ativas filtram status OPEN;
// fechadas e perdidas testam o estágio cru, não o normalizado. O balde "no
// mês" usa a data de criação como aproximação da data de fechamento.
func CalcularResumo(opps []oportunidade.Oportunidade, agora time.Time) Resumo {
	var r Resumo
	r.TotalOportunidades = len(opps)
	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())

	for _, o := range opps {
		switch {
		case o.Estagio == oportunidade.EstagioFechadaGanha:
			r.Fechadas++
			r.ValorFechado += o.ValorEstimado
			if !o.CreatedAt.Before(inicioMes) {
				r.FechadasNoMes++
				r.ValorFechadoNoMes += o.ValorEstimado
			}
		case o.Estagio == oportunidade.EstagioPerdida:
			r.Perdidas++
		}
		if o.Status == oportunidade.StatusAberta {
			r.Ativas++
			r.ValorPipeline += o.ValorEstimado
		}
	}

	if r.TotalOportunidades > 0 {
		r.TaxaConversao = float64(r.Fechadas) / float64(r.TotalOportunidades) * 100
	}
	if r.Fechadas > 0 {
		r.TicketMedio = r.ValorFechado / float64(r.Fechadas)
	}
	return r
}

// DistribuicaoPorEstagio agrupa todas as oportunidades pelo estágio
// normalizado, na ordem de prioridade fixa. Estágios sem registro são
// omitidos; a largura da barra é relativa ao maior valor por estágio.
func DistribuicaoPorEstagio(opps []oportunidade.Oportunidade) []FaixaEstagio {
	porEstagio := map[string]*FaixaEstagio{}
	for _, o := range opps {
		e := oportunidade.NormalizarEstagio(o.Estagio)
		f, ok := porEstagio[e]
		if !ok {
			f = &FaixaEstagio{
				Estagio: e,
				Rotulo:  oportunidade.RotuloEstagio[e],
				Cor:     oportunidade.CorEstagio[e],
			}
			porEstagio[e] = f
		}
		f.Quantidade++
		f.Valor += o.ValorEstimado
	}

	maior := 1.0
	for _, f := range porEstagio {
		if f.Valor > maior {
			maior = f.Valor
		}
	}

	faixas := make([]FaixaEstagio, 0, len(porEstagio))
	for _, e := range oportunidade.OrdemEstagios {
		f, ok := porEstagio[e]
		if !ok {
			continue
		}
		f.Percentual = f.Valor / maior * 100
		faixas = append(faixas, *f)
	}
	return faixas
}

// DivisaoPorProduto agrupa por produto (balde OTHER quando ausente) e ordena
// por valor total decrescente.
func DivisaoPorProduto(opps []oportunidade.Oportunidade) []FaixaProduto {
	porProduto := map[string]*FaixaProduto{}
	for _, o := range opps {
		p := o.Produto
		if p == "" {
			p = ProdutoOutros
		}
		f, ok := porProduto[p]
		if !ok {
			f = &FaixaProduto{Produto: p}
			porProduto[p] = f
		}
		f.Quantidade++
		f.ValorTotal += o.ValorEstimado
		if o.Estagio == oportunidade.EstagioFechadaGanha {
			f.ValorFechado += o.ValorEstimado
		}
	}

	faixas := make([]FaixaProduto, 0, len(porProduto))
	for _, f := range porProduto {
		faixas = append(faixas, *f)
	}
	sort.Slice(faixas, func(i, j int) bool {
		if faixas[i].ValorTotal != faixas[j].ValorTotal {
			return faixas[i].ValorTotal > faixas[j].ValorTotal
		}
		return faixas[i].Produto < faixas[j].Produto
	})
	return faixas
}

// RankingVendedores filtra o pipeline pelo NOME de exibição de cada vendedor
// (join herdado do sistema de origem; dois vendedores homônimos se fundem) e
// ordena pelo valor ativo decrescente. Exibido só para administradores.
func RankingVendedores(vendedores []vendedor.Vendedor, opps []oportunidade.Oportunidade) []PosicaoVendedor {
	ranking := make([]PosicaoVendedor, 0, len(vendedores))
	for _, v := range vendedores {
		pos := PosicaoVendedor{VendedorID: v.ID, Nome: v.Nome}
		for _, o := range opps {
			if o.Vendedor != v.Nome {
				continue
			}
			if o.Status == oportunidade.StatusAberta {
				pos.Ativas++
				pos.ValorAtivo += o.ValorEstimado
			}
			if o.Estagio == oportunidade.EstagioFechadaGanha {
				pos.Fechadas++
				pos.ValorFechado += o.ValorEstimado
			}
		}
		ranking = append(ranking, pos)
	}
	sort.Slice(ranking, func(i, j int) bool {
		return ranking[i].ValorAtivo > ranking[j].ValorAtivo
	})
	return ranking
}

// OportunidadesRecentes devolve as n mais novas por data de criação.
func OportunidadesRecentes(opps []oportunidade.Oportunidade, n int) []oportunidade.Oportunidade {
	ordenadas := make([]oportunidade.Oportunidade, len(opps))
	copy(ordenadas, opps)
	sort.Slice(ordenadas, func(i, j int) bool {
		return ordenadas[i].CreatedAt.After(ordenadas[j].CreatedAt)
	})
	if len(ordenadas) > n {
		ordenadas = ordenadas[:n]
	}
	return ordenadas
}

// sentinela para atividades sem data prevista: ordenam por último
var dataSentinela = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// ProximasAtividades devolve as n atividades pendentes mais próximas,
// ascendente pela data prevista; sem data vai para o fim.
func ProximasAtividades(atividades []atividade.Atividade, n int) []atividade.Atividade {
	pendentes := make([]atividade.Atividade, 0, len(atividades))
	for _, a := range atividades {
		if !a.Concluida {
			pendentes = append(pendentes, a)
		}
	}
	data := func(a atividade.Atividade) time.Time {
		if a.DataPrevista == nil {
			return dataSentinela
		}
		return *a.DataPrevista
	}
	sort.Slice(pendentes, func(i, j int) bool {
		return data(pendentes[i]).Before(data(pendentes[j]))
	})
	if len(pendentes) > n {
		pendentes = pendentes[:n]
	}
	return pendentes
}
