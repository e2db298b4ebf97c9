package oportunidade

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GraoForte/portal-api/internal/respostas"
	"github.com/GraoForte/portal-api/internal/utils"
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

// oportunidadeDTO aceita valor e probabilidade como número ou string; o
// sistema de origem gravava os dois shapes.
type oportunidadeDTO struct {
	Titulo        string      `json:"titulo"`
	Cliente       string      `json:"cliente"`
	Vendedor      string      `json:"vendedor"`
	Produto       string      `json:"produto"`
	ValorEstimado interface{} `json:"valor_estimado"`
	Probabilidade interface{} `json:"probabilidade"`
	Estagio       string      `json:"estagio"`
	Status        string      `json:"status"`
}

func (dto *oportunidadeDTO) aplicar(o *Oportunidade) {
	o.Titulo = dto.Titulo
	o.Cliente = dto.Cliente
	o.Vendedor = dto.Vendedor
	o.Produto = dto.Produto
	o.ValorEstimado = utils.ToNumero(dto.ValorEstimado)
	o.Probabilidade = int(utils.ToNumero(dto.Probabilidade))
	o.Estagio = dto.Estagio
	o.Status = dto.Status
}

// GET /api/comercial/oportunidades?limit=N
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.Repository.Listar(h.DB, limit)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao listar oportunidades")
		return
	}
	respostas.OK(w, list)
}

// GET /api/comercial/oportunidades/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "oportunidade não encontrada")
		return
	}
	respostas.OK(w, o)
}

// POST /api/comercial/oportunidades
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto oportunidadeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if dto.Titulo == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'titulo' é obrigatório")
		return
	}

	var o Oportunidade
	dto.aplicar(&o)
	if o.Estagio == "" {
		o.Estagio = EstagioProspeccao
	}
	if o.Status == "" {
		o.Status = StatusAberta
	}

	if err := h.Repository.Salvar(h.DB, &o); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar oportunidade")
		return
	}
	respostas.Criado(w, o)
}

// PUT /api/comercial/oportunidades/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}

	existing, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respostas.Falha(w, http.StatusNotFound, "oportunidade não encontrada")
			return
		}
		respostas.Falha(w, http.StatusInternalServerError, "erro ao buscar oportunidade")
		return
	}

	var dto oportunidadeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	dto.aplicar(existing)

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar oportunidade")
		return
	}
	respostas.OK(w, existing)
}

// DELETE /api/comercial/oportunidades/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao excluir oportunidade")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
