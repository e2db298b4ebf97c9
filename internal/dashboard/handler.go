package dashboard

import (
	"net/http"
	"time"

	"github.com/GraoForte/portal-api/internal/atividade"
	"github.com/GraoForte/portal-api/internal/auth"
	"github.com/GraoForte/portal-api/internal/oportunidade"
	"github.com/GraoForte/portal-api/internal/respostas"
	"github.com/GraoForte/portal-api/internal/vendedor"
	"gorm.io/gorm"
)

type Handler struct {
	DB            *gorm.DB
	Oportunidades oportunidade.Repository
	Vendedores    vendedor.Repository
	Atividades    atividade.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:            db,
		Oportunidades: oportunidade.NewRepository(),
		Vendedores:    vendedor.NewRepository(),
		Atividades:    atividade.NewRepository(),
	}
}

// Painel é a resposta completa de GET /api/comercial/dashboard. O slot de
// ranking só é preenchido para administradores; usuários comuns recebem as
// oportunidades recentes no mesmo lugar.
type Painel struct {
	Resumo                Resumo                      `json:"resumo"`
	DistribuicaoEstagios  []FaixaEstagio              `json:"distribuicao_estagios"`
	Produtos              []FaixaProduto              `json:"produtos"`
	AtividadesTotais      atividade.Totais            `json:"atividades_totais"`
	ProximasAtividades    []atividade.Atividade       `json:"proximas_atividades"`
	RankingVendedores     []PosicaoVendedor           `json:"ranking_vendedores,omitempty"`
	OportunidadesRecentes []oportunidade.Oportunidade `json:"oportunidades_recentes,omitempty"`
}

// GET /api/comercial/dashboard
func (h *Handler) Painel(w http.ResponseWriter, r *http.Request) {
	opps, err := h.Oportunidades.Listar(h.DB, 0)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao carregar oportunidades")
		return
	}
	atividades, err := h.Atividades.Listar(h.DB, 0)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao carregar atividades")
		return
	}

	agora := time.Now()
	painel := Painel{
		Resumo:               CalcularResumo(opps, agora),
		DistribuicaoEstagios: DistribuicaoPorEstagio(opps),
		Produtos:             DivisaoPorProduto(opps),
		AtividadesTotais:     atividade.CalcularTotais(atividades, agora),
		ProximasAtividades:   ProximasAtividades(atividades, 6),
	}

	if isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool); isAdmin {
		vendedores, err := h.Vendedores.Listar(h.DB, true)
		if err != nil {
			respostas.Falha(w, http.StatusInternalServerError, "erro ao carregar vendedores")
			return
		}
		painel.RankingVendedores = RankingVendedores(vendedores, opps)
	} else {
		painel.OportunidadesRecentes = OportunidadesRecentes(opps, 8)
	}

	respostas.OK(w, painel)
}
