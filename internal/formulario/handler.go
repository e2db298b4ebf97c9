package formulario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GraoForte/portal-api/internal/respostas"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var validate = validator.New()

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type submissaoRequest struct {
	AtividadeID     *uint                  `json:"atividade_id"`
	DadosFormulario map[string]interface{} `json:"dados_formulario" validate:"required"`
	PreenchidoPor   string                 `json:"preenchido_por" validate:"required"`
	IsRascunho      bool                   `json:"is_rascunho"`
}

// POST /api/formularios-{tipo}/{opd}
// Rascunho passa com validação parcial; finalização exige todos os itens.
func (h *Handler) Submeter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	def, ok := Catalogo[vars["tipo"]]
	if !ok {
		respostas.Falha(w, http.StatusNotFound, "tipo de formulário desconhecido")
		return
	}

	var req submissaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "campos obrigatórios ausentes: dados_formulario e preenchido_por")
		return
	}

	if err := def.Validar(req.DadosFormulario, req.IsRascunho); err != nil {
		respostas.Falha(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	reg := Registro{
		Tipo:          def.Tipo,
		NumeroOPD:     vars["opd"],
		AtividadeID:   req.AtividadeID,
		Dados:         req.DadosFormulario,
		PreenchidoPor: req.PreenchidoPor,
		Rascunho:      req.IsRascunho,
	}
	if err := h.Repository.Salvar(h.DB, &reg); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar formulário")
		return
	}
	respostas.Criado(w, reg)
}

// GET /api/formularios-{tipo}/{opd} — última submissão do tipo para a OPD.
func (h *Handler) BuscarUltimo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if _, ok := Catalogo[vars["tipo"]]; !ok {
		respostas.Falha(w, http.StatusNotFound, "tipo de formulário desconhecido")
		return
	}
	reg, err := h.Repository.BuscarUltimo(h.DB, vars["tipo"], vars["opd"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respostas.Falha(w, http.StatusNotFound, "nenhuma submissão encontrada")
			return
		}
		respostas.Falha(w, http.StatusInternalServerError, "erro ao buscar formulário")
		return
	}
	respostas.OK(w, reg)
}

// GET /api/formularios/definicoes — catálogo completo para montar as telas.
func (h *Handler) ListarDefinicoes(w http.ResponseWriter, r *http.Request) {
	defs := make([]Definicao, 0, len(Catalogo))
	for _, d := range Catalogo {
		defs = append(defs, d)
	}
	respostas.OK(w, defs)
}

// GET /api/formularios/opcoes?setor=X — lista de respostas fechadas do setor.
func (h *Handler) OpcoesDoSetor(w http.ResponseWriter, r *http.Request) {
	setor := r.URL.Query().Get("setor")
	if opcoes, ok := OpcoesPorSetor[setor]; ok {
		respostas.OK(w, opcoes)
		return
	}
	respostas.OK(w, OpcoesConformidade)
}
