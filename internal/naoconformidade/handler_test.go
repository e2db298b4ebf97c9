package naoconformidade

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GraoForte/portal-api/internal/auth"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func novoBancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&NaoConformidade{}))
	return db
}

func patchStatus(t *testing.T, h *Handler, id string, status string, usuarioID uint) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"status": status})
	req := httptest.NewRequest(http.MethodPatch, "/api/qualidade/nao-conformidade/"+id+"/status", bytes.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), auth.CtxUserID, usuarioID))

	rec := httptest.NewRecorder()
	r := mux.NewRouter()
	r.HandleFunc("/api/qualidade/nao-conformidade/{id}/status", h.MudarStatus).Methods("PATCH")
	r.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    NaoConformidade `json:"data"`
	Error   string          `json:"error"`
}

func TestMudarStatusRejeitaFechamentoDeAltaSemRAC(t *testing.T) {
	db := novoBancoDeTeste(t)
	h := NewHandler(db)

	nc := NaoConformidade{Numero: "NC-001", Status: StatusAberta, Severidade: SeveridadeAlta}
	require.NoError(t, db.Create(&nc).Error)

	rec := patchStatus(t, h, "1", StatusFechada, 7)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	// nenhuma mutação persistida
	var salva NaoConformidade
	require.NoError(t, db.First(&salva, nc.ID).Error)
	assert.Equal(t, StatusAberta, salva.Status)
	assert.Nil(t, salva.FechadoPor)
	assert.Nil(t, salva.FechadoEm)
}

func TestMudarStatusFechaAltaComRACVinculada(t *testing.T) {
	db := novoBancoDeTeste(t)
	h := NewHandler(db)

	racID := uint(12)
	nc := NaoConformidade{Numero: "NC-002", Status: StatusPendenteAcao, Severidade: SeveridadeAlta, AcaoCorretivaID: &racID}
	require.NoError(t, db.Create(&nc).Error)

	rec := patchStatus(t, h, "1", StatusFechada, 7)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, StatusFechada, env.Data.Status)
	require.NotNil(t, env.Data.FechadoPor)
	assert.Equal(t, uint(7), *env.Data.FechadoPor)
	assert.NotNil(t, env.Data.FechadoEm)
}

func TestMudarStatusTransicaoInvalida(t *testing.T) {
	db := novoBancoDeTeste(t)
	h := NewHandler(db)

	nc := NaoConformidade{Numero: "NC-003", Status: StatusAberta, Severidade: SeveridadeBaixa}
	require.NoError(t, db.Create(&nc).Error)

	rec := patchStatus(t, h, "1", StatusPendenteAcao, 1)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMudarStatusNaoEncontrada(t *testing.T) {
	db := novoBancoDeTeste(t)
	h := NewHandler(db)

	rec := patchStatus(t, h, "99", StatusFechada, 1)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCriarForcaStatusAberta(t *testing.T) {
	db := novoBancoDeTeste(t)
	h := NewHandler(db)

	body := []byte(`{"numero":"NC-010","status":"FECHADA","severidade":"MEDIA","anexos":"not json"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/qualidade/nao-conformidade", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, StatusAberta, env.Data.Status)
	assert.Empty(t, env.Data.Anexos, "anexos ilegíveis viram lista vazia")
}
