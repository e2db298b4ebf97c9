package vendedor

import (
	"encoding/json"
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

// GET /api/comercial/vendedores?ativo=true
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	somenteAtivos := r.URL.Query().Get("ativo") == "true"
	list, err := h.Repository.Listar(h.DB, somenteAtivos)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao listar vendedores")
		return
	}
	respostas.OK(w, list)
}

// GET /api/comercial/vendedores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	v, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "vendedor não encontrado")
		return
	}
	respostas.OK(w, v)
}

// POST /api/comercial/vendedores (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var v Vendedor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if v.Nome == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'nome' é obrigatório")
		return
	}
	v.ID = 0
	v.Ativo = true
	if err := h.Repository.Salvar(h.DB, &v); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar vendedor")
		return
	}
	respostas.Criado(w, v)
}

// PUT /api/comercial/vendedores/{id} (admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	existing, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "vendedor não encontrado")
		return
	}

	var v Vendedor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	existing.Nome = v.Nome
	existing.Email = v.Email
	existing.Ativo = v.Ativo
	existing.TotalOportunidades = v.TotalOportunidades
	existing.OportunidadesGanhas = v.OportunidadesGanhas
	existing.ValorGanho = v.ValorGanho
	existing.TotalClientes = v.TotalClientes

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar vendedor")
		return
	}
	respostas.OK(w, existing)
}

// DELETE /api/comercial/vendedores/{id} (admin)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao excluir vendedor")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
