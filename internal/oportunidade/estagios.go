// internal/oportunidade/estagios.go
package oportunidade

// Estágios crus como vêm do pipeline. PROSPECTING, QUALIFICATION e PROPOSAL
// são valores legados que o dashboard exibe num único balde IN_ANALYSIS.
const (
	EstagioProspeccao    = "PROSPECTING"
	EstagioQualificacao  = "QUALIFICATION"
	EstagioProposta      = "PROPOSAL"
	EstagioEmAnalise     = "IN_ANALYSIS"
	EstagioNegociacao    = "NEGOTIATION"
	EstagioPosNegociacao = "POST_NEGOTIATION"
	EstagioFechadaGanha  = "CLOSED_WON"
	EstagioPerdida       = "LOST"
	EstagioTeste         = "TEST"
	EstagioSuspensa      = "SUSPENDED"
	EstagioSubstituida   = "SUPERSEDED"
)

// StatusAberta é o status de registro ativo; estágio e status são
// acompanhados de forma independente.
const StatusAberta = "OPEN"

// NormalizarEstagio colapsa os estágios legados no balde de exibição.
// Vale só para agrupamento de distribuição — contagens de fechadas/perdidas
// testam o estágio cru.
func NormalizarEstagio(estagio string) string {
	switch estagio {
	case EstagioProspeccao, EstagioQualificacao, EstagioProposta:
		return EstagioEmAnalise
	default:
		return estagio
	}
}

// OrdemEstagios é a prioridade fixa de exibição da distribuição.
var OrdemEstagios = []string{
	EstagioEmAnalise,
	EstagioNegociacao,
	EstagioPosNegociacao,
	EstagioFechadaGanha,
	EstagioPerdida,
	EstagioTeste,
	EstagioSuspensa,
	EstagioSubstituida,
}

var RotuloEstagio = map[string]string{
	EstagioEmAnalise:     "Em análise",
	EstagioNegociacao:    "Negociação",
	EstagioPosNegociacao: "Pós-negociação",
	EstagioFechadaGanha:  "Fechada (ganha)",
	EstagioPerdida:       "Perdida",
	EstagioTeste:         "Teste",
	EstagioSuspensa:      "Suspensa",
	EstagioSubstituida:   "Substituída",
}

var CorEstagio = map[string]string{
	EstagioEmAnalise:     "#3b82f6",
	EstagioNegociacao:    "#f59e0b",
	EstagioPosNegociacao: "#8b5cf6",
	EstagioFechadaGanha:  "#22c55e",
	EstagioPerdida:       "#ef4444",
	EstagioTeste:         "#6b7280",
	EstagioSuspensa:      "#a16207",
	EstagioSubstituida:   "#9ca3af",
}
