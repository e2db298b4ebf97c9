package atividade

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

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

// GET /api/comercial/atividades?limit=N
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.Repository.Listar(h.DB, limit)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao listar atividades")
		return
	}
	respostas.OK(w, list)
}

// GET /api/comercial/atividades/totais
func (h *Handler) Totais(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB, 0)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao calcular totais")
		return
	}
	respostas.OK(w, CalcularTotais(list, time.Now()))
}

// POST /api/comercial/atividades
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var a Atividade
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if a.Titulo == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'titulo' é obrigatório")
		return
	}
	a.ID = 0
	if a.Tipo == "" {
		a.Tipo = TipoOutro
	}
	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar atividade")
		return
	}
	respostas.Criado(w, a)
}

// PUT /api/comercial/atividades/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	existing, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "atividade não encontrada")
		return
	}

	var a Atividade
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	existing.Titulo = a.Titulo
	existing.Tipo = a.Tipo
	existing.DataPrevista = a.DataPrevista
	existing.Concluida = a.Concluida
	existing.Cliente = a.Cliente
	existing.Oportunidade = a.Oportunidade

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar atividade")
		return
	}
	respostas.OK(w, existing)
}

// DELETE /api/comercial/atividades/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao excluir atividade")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
