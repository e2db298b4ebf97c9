package naoconformidade

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GraoForte/portal-api/internal/auth"
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

type mudarStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/qualidade/nao-conformidade?status=X
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB, r.URL.Query().Get("status"))
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao listar não conformidades")
		return
	}
	respostas.OK(w, list)
}

// GET /api/qualidade/nao-conformidade/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	nc, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "não conformidade não encontrada")
		return
	}
	respostas.OK(w, nc)
}

// POST /api/qualidade/nao-conformidade
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var nc NaoConformidade
	if err := json.NewDecoder(r.Body).Decode(&nc); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if nc.Numero == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'numero' é obrigatório")
		return
	}
	nc.ID = 0
	nc.Status = StatusAberta
	nc.FechadoPor = nil
	nc.FechadoEm = nil
	if nc.Severidade == "" {
		nc.Severidade = SeveridadeNA
	}

	if err := h.Repository.Salvar(h.DB, &nc); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar não conformidade")
		return
	}
	respostas.Criado(w, nc)
}

// PUT /api/qualidade/nao-conformidade/{id}
// Edita os campos descritivos; status só muda pela rota de transição.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	existing, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respostas.Falha(w, http.StatusNotFound, "não conformidade não encontrada")
			return
		}
		respostas.Falha(w, http.StatusInternalServerError, "erro ao buscar não conformidade")
		return
	}
	if existing.Status == StatusFechada {
		respostas.Falha(w, http.StatusUnprocessableEntity, "não conformidade fechada não pode ser editada")
		return
	}

	var nc NaoConformidade
	if err := json.NewDecoder(r.Body).Decode(&nc); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	existing.Severidade = nc.Severidade
	existing.Descricao = nc.Descricao
	existing.EvidenciaObjetiva = nc.EvidenciaObjetiva
	existing.AcaoImediata = nc.AcaoImediata
	existing.Tipo = nc.Tipo
	existing.Disposicao = nc.Disposicao
	existing.AcaoCorretivaID = nc.AcaoCorretivaID
	existing.ProcessosEnvolvidos = nc.ProcessosEnvolvidos
	existing.Anexos = nc.Anexos

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar não conformidade")
		return
	}
	respostas.OK(w, existing)
}

// PATCH /api/qualidade/nao-conformidade/{id}/status
// A resposta substitui o registro local por inteiro no cliente.
func (h *Handler) MudarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req mudarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'status' é obrigatório")
		return
	}

	nc, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respostas.Falha(w, http.StatusNotFound, "não conformidade não encontrada")
			return
		}
		respostas.Falha(w, http.StatusInternalServerError, "erro ao buscar não conformidade")
		return
	}

	usuarioID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if err := nc.Transicionar(req.Status, usuarioID, time.Now()); err != nil {
		respostas.Falha(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.Repository.Atualizar(h.DB, nc); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar status")
		return
	}
	respostas.OK(w, nc)
}

// DELETE /api/qualidade/nao-conformidade/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao excluir não conformidade")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
