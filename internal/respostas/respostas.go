// internal/respostas/respostas.go
package respostas

import (
	"encoding/json"
	"net/http"
)

// Envelope é o shape de toda resposta da API: o cliente checa `success`
// antes de confiar em `data` e exibe `error` ao usuário quando falso.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(w http.ResponseWriter, data interface{}) {
	escrever(w, http.StatusOK, Envelope{Success: true, Data: data})
}

func Criado(w http.ResponseWriter, data interface{}) {
	escrever(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Falha devolve um erro de negócio ou de transporte com mensagem legível.
func Falha(w http.ResponseWriter, status int, msg string) {
	escrever(w, status, Envelope{Success: false, Error: msg})
}

func escrever(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
