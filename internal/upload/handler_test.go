package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storageFake struct {
	pasta string
	falha bool
}

func (s *storageFake) Enviar(_ context.Context, dados []byte, nomeOriginal, pasta string) (string, string, error) {
	if s.falha {
		return "", "", errors.New("bucket indisponível")
	}
	s.pasta = pasta
	return "abc-" + nomeOriginal, "https://bucket.s3.amazonaws.com/" + pasta + "/abc-" + nomeOriginal, nil
}

func requisicaoMultipart(t *testing.T, campos map[string]string) *http.Request {
	t.Helper()
	var corpo bytes.Buffer
	mw := multipart.NewWriter(&corpo)
	parte, err := mw.CreateFormFile("file", "foto.jpg")
	require.NoError(t, err)
	_, err = parte.Write([]byte("conteudo da foto"))
	require.NoError(t, err)
	for k, v := range campos {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &corpo)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestEnviarComSucesso(t *testing.T) {
	fake := &storageFake{}
	h := NewHandler(fake)

	rec := httptest.NewRecorder()
	h.Enviar(rec, requisicaoMultipart(t, map[string]string{"tipo": "solda-plataforma", "numero_opd": "OPD-123"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp respostaUpload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "abc-foto.jpg", resp.Filename)
	assert.Contains(t, resp.URL, "solda-plataforma/OPD-123/")
	assert.Equal(t, int64(len("conteudo da foto")), resp.Size)
	assert.Equal(t, "solda-plataforma/OPD-123", fake.pasta)
}

func TestEnviarSemNumeroOPD(t *testing.T) {
	fake := &storageFake{}
	h := NewHandler(fake)

	rec := httptest.NewRecorder()
	h.Enviar(rec, requisicaoMultipart(t, map[string]string{"tipo": "expedicao"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "expedicao", fake.pasta)
}

func TestEnviarSemArquivo(t *testing.T) {
	h := NewHandler(&storageFake{})

	var corpo bytes.Buffer
	mw := multipart.NewWriter(&corpo)
	require.NoError(t, mw.WriteField("tipo", "expedicao"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &corpo)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.Enviar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file")
}

func TestEnviarComFalhaNoBucket(t *testing.T) {
	h := NewHandler(&storageFake{falha: true})

	rec := httptest.NewRecorder()
	h.Enviar(rec, requisicaoMultipart(t, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
