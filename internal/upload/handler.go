package upload

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/GraoForte/portal-api/internal/respostas"
)

// Limite por arquivo. Fotos de inspeção e vídeos curtos cabem folgado.
const tamanhoMaximo = 25 << 20

type Handler struct {
	Storage Storage
}

func NewHandler(storage Storage) *Handler {
	return &Handler{Storage: storage}
}

// respostaUpload mantém filename e url no topo do corpo, que é como os
// formulários montam a referência `{filename, url, size}` do anexo.
type respostaUpload struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// POST /api/upload — multipart com campos file, tipo e numero_opd (opcional).
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, tamanhoMaximo)
	if err := r.ParseMultipartForm(tamanhoMaximo); err != nil {
		respostas.Falha(w, http.StatusBadRequest, "arquivo excede o tamanho máximo permitido")
		return
	}

	arquivo, cabecalho, err := r.FormFile("file")
	if err != nil {
		respostas.Falha(w, http.StatusBadRequest, "campo 'file' ausente")
		return
	}
	defer arquivo.Close()

	dados, err := io.ReadAll(arquivo)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao ler o arquivo")
		return
	}

	pasta := r.FormValue("tipo")
	if opd := r.FormValue("numero_opd"); opd != "" {
		pasta = pasta + "/" + opd
	}

	nome, url, err := h.Storage.Enviar(r.Context(), dados, cabecalho.Filename, pasta)
	if err != nil {
		log.Printf("upload: falha ao enviar %s: %v", cabecalho.Filename, err)
		respostas.Falha(w, http.StatusInternalServerError, "erro ao enviar o arquivo")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(respostaUpload{
		Success:  true,
		Filename: nome,
		URL:      url,
		Size:     int64(len(dados)),
	})
}
