package formulario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defTeste = Definicao{
	Tipo:   "teste",
	Titulo: "Checklist de teste",
	Setor:  "montagem",
	Checkpoints: []Checkpoint{
		{Campo: "solda", Rotulo: "Solda", TipoResposta: RespostaOpcao},
		{Campo: "medida", Rotulo: "Medida", TipoResposta: RespostaTexto},
		{Campo: "foto_final", Rotulo: "Foto final", TipoResposta: RespostaOpcao, AnexoObrigatorio: true},
	},
}

func dadosCompletos() map[string]interface{} {
	return map[string]interface{}{
		"solda":      "Conforme",
		"medida":     "12,5 m",
		"foto_final": "Conforme",
		"foto_final_anexos": []interface{}{
			map[string]interface{}{"filename": "foto.jpg", "url": "/u/foto.jpg"},
		},
	}
}

func TestFinalizarComTudoPreenchido(t *testing.T) {
	assert.NoError(t, defTeste.Validar(dadosCompletos(), false))
}

func TestFinalizarExigeTodosOsItens(t *testing.T) {
	dados := dadosCompletos()
	delete(dados, "medida")
	err := defTeste.Validar(dados, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Medida")
}

func TestRascunhoAceitaParcial(t *testing.T) {
	dados := map[string]interface{}{"solda": "Conforme"}
	assert.NoError(t, defTeste.Validar(dados, true))
}

func TestRascunhoAindaValidaOpcao(t *testing.T) {
	dados := map[string]interface{}{"solda": "Talvez"}
	err := defTeste.Validar(dados, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Solda")
}

func TestFinalizarExigeAnexoObrigatorio(t *testing.T) {
	dados := dadosCompletos()
	delete(dados, "foto_final_anexos")
	err := defTeste.Validar(dados, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anexo")
}

func TestRascunhoNaoExigeAnexo(t *testing.T) {
	dados := map[string]interface{}{"foto_final": "Conforme"}
	assert.NoError(t, defTeste.Validar(dados, true))
}

func TestAnexosComoStringJSON(t *testing.T) {
	dados := dadosCompletos()
	dados["foto_final_anexos"] = `[{"filename":"foto.jpg","url":"/u/foto.jpg","size":100}]`
	assert.NoError(t, defTeste.Validar(dados, false))

	dados["foto_final_anexos"] = "not json"
	assert.Error(t, defTeste.Validar(dados, false))
}

func TestOpcoesDoSetorSobrepoemPadrao(t *testing.T) {
	def := Catalogo["solda-plataforma"]
	dados := map[string]interface{}{"cordao_longarinas": "Retrabalho"}
	assert.NoError(t, def.Validar(dados, true), "opção setorial 'Retrabalho' vale no setor de solda")
}

func TestCatalogoConsistente(t *testing.T) {
	for tipo, def := range Catalogo {
		assert.Equal(t, tipo, def.Tipo, "chave e tipo precisam bater")
		assert.NotEmpty(t, def.Titulo)
		assert.NotEmpty(t, def.Checkpoints)
		vistos := map[string]bool{}
		for _, cp := range def.Checkpoints {
			assert.NotEmpty(t, cp.Campo)
			assert.False(t, vistos[cp.Campo], "campo duplicado em %s: %s", tipo, cp.Campo)
			vistos[cp.Campo] = true
		}
	}
}
