package ia

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalisarCausasRepassaResposta(t *testing.T) {
	servico := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analisar-causas", r.URL.Path)
		w.Write([]byte(`{"causas":["treinamento insuficiente","ferramenta desgastada"]}`))
	}))
	defer servico.Close()
	t.Setenv("IA_SERVICE_URL", servico.URL)

	h := NewHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/qualidade/ia/analisar-causas",
		strings.NewReader(`{"descricao":"trinca no cordão de solda","setor":"solda"}`))
	h.AnalisarCausas(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "treinamento insuficiente")
}

func TestAnalisarCausasExigeDescricao(t *testing.T) {
	t.Setenv("IA_SERVICE_URL", "http://localhost:1")

	h := NewHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/qualidade/ia/analisar-causas",
		strings.NewReader(`{"setor":"solda"}`))
	h.AnalisarCausas(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalisarCausasServicoForaDoAr(t *testing.T) {
	servico := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer servico.Close()
	t.Setenv("IA_SERVICE_URL", servico.URL)

	h := NewHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/qualidade/ia/analisar-causas",
		strings.NewReader(`{"descricao":"vazamento no cilindro"}`))
	h.AnalisarCausas(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestAnalisarCausasSemConfiguracao(t *testing.T) {
	t.Setenv("IA_SERVICE_URL", "")

	h := NewHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/qualidade/ia/analisar-causas",
		strings.NewReader(`{"descricao":"x"}`))
	h.AnalisarCausas(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
