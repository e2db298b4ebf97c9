package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GraoForte/portal-api/internal/auth"
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

// POST /login
// Valida email/senha e emite o access token do portal.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "payload inválido")
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		respostas.Falha(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}
	if !user.Ativo {
		respostas.Falha(w, http.StatusUnauthorized, "usuário desativado")
		return
	}
	if !utils.CheckSenha(user.Password, req.Password) {
		respostas.Falha(w, http.StatusUnauthorized, "senha incorreta")
		return
	}

	access, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao gerar token")
		return
	}

	respostas.OK(w, map[string]any{
		"access_token": access,
		"token_type":   "Bearer",
		"expires_in":   int(auth.AccessTTL.Seconds()),
		"usuario":      user,
	})
}

// POST /api/usuarios (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "payload inválido")
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao processar senha")
		return
	}

	u := Usuario{
		Nome:     req.Nome,
		Email:    req.Email,
		Password: hash,
		Setor:    req.Setor,
		IsAdmin:  req.IsAdmin,
		Ativo:    true,
	}
	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar usuário")
		return
	}
	respostas.Criado(w, u)
}

// GET /api/usuarios (admin)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao listar usuários")
		return
	}
	respostas.OK(w, list)
}

// GET /api/usuarios/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	u, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	respostas.OK(w, u)
}

// PUT /api/usuarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}

	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if !isAdmin && uint(id) != userID {
		respostas.Falha(w, http.StatusForbidden, "acesso negado")
		return
	}

	var req AtualizarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "payload inválido")
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	if req.Nome != "" {
		u.Nome = req.Nome
	}
	if req.Setor != "" {
		u.Setor = req.Setor
	}
	if req.Ativo != nil && isAdmin {
		u.Ativo = *req.Ativo
	}
	if err := h.Repository.Atualizar(h.DB, u); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao atualizar usuário")
		return
	}
	respostas.OK(w, u)
}

// POST /api/usuarios/{id}/resetar-senha (admin)
// Gera uma senha temporária e devolve em claro uma única vez.
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		respostas.Falha(w, http.StatusNotFound, "usuário não encontrado")
		return
	}

	temporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao gerar senha temporária")
		return
	}
	hash, err := utils.HashSenha(temporaria)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao processar senha")
		return
	}
	u.Password = hash
	if err := h.Repository.Atualizar(h.DB, u); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao salvar senha")
		return
	}
	respostas.OK(w, map[string]string{"senha_temporaria": temporaria})
}

// DELETE /api/usuarios/{id} (admin)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao excluir usuário")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
