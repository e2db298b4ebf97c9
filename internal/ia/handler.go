package ia

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/GraoForte/portal-api/internal/respostas"
)

// Handler repassa pedidos de análise de causas ao serviço de IA configurado.
// O portal não interpreta a resposta, só a entrega ao cliente.
type Handler struct {
	Client *http.Client
}

func NewHandler() *Handler {
	return &Handler{
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type analiseRequest struct {
	Descricao string `json:"descricao"`
	Setor     string `json:"setor,omitempty"`
}

// POST /api/qualidade/ia/analisar-causas
func (h *Handler) AnalisarCausas(w http.ResponseWriter, r *http.Request) {
	destino := os.Getenv("IA_SERVICE_URL")
	if destino == "" {
		respostas.Falha(w, http.StatusServiceUnavailable, "serviço de análise de causas não configurado")
		return
	}

	var req analiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.Descricao == "" {
		respostas.Falha(w, http.StatusBadRequest, "o campo 'descricao' é obrigatório")
		return
	}

	body, _ := json.Marshal(req)
	resp, err := h.Client.Post(destino+"/analisar-causas", "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("ia: erro ao chamar serviço de análise: %v", err)
		respostas.Falha(w, http.StatusBadGateway, "serviço de análise de causas indisponível")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("ia: serviço de análise respondeu %d", resp.StatusCode)
		respostas.Falha(w, http.StatusBadGateway, "serviço de análise de causas retornou erro")
		return
	}

	var resultado json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&resultado); err != nil {
		respostas.Falha(w, http.StatusBadGateway, "resposta inválida do serviço de análise")
		return
	}
	respostas.OK(w, resultado)
}
