package acaocorretiva

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GraoForte/portal-api/internal/respostas"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

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

// GET /api/qualidade/acao-corretiva?status=X
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB, r.URL.Query().Get("status"))
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao listar ações corretivas")
		return
	}
	respostas.OK(w, list)
}

// GET /api/qualidade/acao-corretiva/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	ac, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "ação corretiva não encontrada")
		return
	}
	respostas.OK(w, ac)
}

// POST /api/qualidade/acao-corretiva
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var ac AcaoCorretiva
	if err := json.NewDecoder(r.Body).Decode(&ac); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if ac.Numero == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'numero' é obrigatório")
		return
	}
	ac.ID = 0
	ac.Status = StatusAberta
	ac.Acoes = NormalizarAcoes(ac.Acoes)

	if err := h.Repository.Salvar(h.DB, &ac); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar ação corretiva")
		return
	}
	respostas.Criado(w, ac)
}

// PUT /api/qualidade/acao-corretiva/{id}
// Edita campos descritivos; status só muda pela rota de transição.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	existing, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respostas.Falha(w, http.StatusNotFound, "ação corretiva não encontrada")
			return
		}
		respostas.Falha(w, http.StatusInternalServerError, "erro ao buscar ação corretiva")
		return
	}
	if existing.Status == StatusFechada {
		respostas.Falha(w, http.StatusUnprocessableEntity, "ação corretiva fechada não pode ser editada")
		return
	}

	var ac AcaoCorretiva
	if err := json.NewDecoder(r.Body).Decode(&ac); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	existing.Falha = ac.Falha
	existing.Causas = ac.Causas
	existing.Subcausas = ac.Subcausas
	existing.Acoes = NormalizarAcoes(ac.Acoes)
	existing.Responsaveis = ac.Responsaveis
	existing.Prazo = ac.Prazo
	existing.Anexos = ac.Anexos

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar ação corretiva")
		return
	}
	respostas.OK(w, existing)
}

// PATCH /api/qualidade/acao-corretiva/{id}/status
// Transição + campos extras num único update parcial; a resposta substitui o
// registro inteiro no cliente.
func (h *Handler) MudarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req TransicaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'status' é obrigatório")
		return
	}

	ac, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respostas.Falha(w, http.StatusNotFound, "ação corretiva não encontrada")
			return
		}
		respostas.Falha(w, http.StatusInternalServerError, "erro ao buscar ação corretiva")
		return
	}

	if err := ac.Transicionar(req); err != nil {
		respostas.Falha(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.Repository.Atualizar(h.DB, ac); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar status")
		return
	}
	respostas.OK(w, ac)
}

// DELETE /api/qualidade/acao-corretiva/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao excluir ação corretiva")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
