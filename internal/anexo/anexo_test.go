package anexo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListaUnmarshalDefensivo(t *testing.T) {
	casos := []struct {
		nome    string
		entrada string
		quer    Lista
	}{
		{"array normal", `[{"filename":"a.pdf","url":"/u/a.pdf","size":10}]`, Lista{{Filename: "a.pdf", URL: "/u/a.pdf", Size: 10}}},
		{"json dentro de string", `"[{\"filename\":\"b.jpg\",\"url\":\"/u/b.jpg\",\"size\":5}]"`, Lista{{Filename: "b.jpg", URL: "/u/b.jpg", Size: 5}}},
		{"string que não é json", `"not json"`, Lista{}},
		{"null", `null`, Lista{}},
		{"objeto inesperado", `{"filename":"x"}`, Lista{}},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			var l Lista
			require.NoError(t, json.Unmarshal([]byte(c.entrada), &l))
			assert.Equal(t, c.quer, l)
		})
	}
}

func TestListaScan(t *testing.T) {
	var l Lista
	require.NoError(t, l.Scan("not json"))
	assert.Empty(t, l)

	require.NoError(t, l.Scan([]byte(`[{"filename":"c.png","url":"/u/c.png","size":1}]`)))
	require.Len(t, l, 1)
	assert.Equal(t, "c.png", l[0].Filename)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)
}

func TestListaValueNuncaNula(t *testing.T) {
	var l Lista
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestListaTextoDefensivo(t *testing.T) {
	var l ListaTexto
	require.NoError(t, json.Unmarshal([]byte(`"[\"Solda\",\"Pintura\"]"`), &l))
	assert.Equal(t, ListaTexto{"Solda", "Pintura"}, l)

	require.NoError(t, json.Unmarshal([]byte(`"quebrado"`), &l))
	assert.Empty(t, l)
}
