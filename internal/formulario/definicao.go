// internal/formulario/definicao.go
package formulario

import (
	"fmt"

	"github.com/GraoForte/portal-api/internal/anexo"
)

// Tipos de resposta de um checkpoint.
const (
	RespostaOpcao = "opcao"
	RespostaTexto = "texto"
)

// Opções padrão dos checkpoints de escolha fechada.
var OpcoesConformidade = []string{"Conforme", "Não conforme"}

// Checkpoint é um item verificável de um checklist.
type Checkpoint struct {
	Campo            string   `json:"campo"`
	Rotulo           string   `json:"rotulo"`
	Criterio         string   `json:"criterio,omitempty"`
	TipoResposta     string   `json:"tipo_resposta"`
	Opcoes           []string `json:"opcoes,omitempty"`
	AnexoObrigatorio bool     `json:"anexo_obrigatorio"`
}

// Definicao descreve um checklist inteiro de forma declarativa; um motor
// único atende todos os formulários do catálogo.
type Definicao struct {
	Tipo        string       `json:"tipo"`
	Titulo      string       `json:"titulo"`
	Setor       string       `json:"setor"`
	Checkpoints []Checkpoint `json:"checkpoints"`
}

// opcoesDo resolve a lista de opções do checkpoint, caindo no padrão de
// conformidade e respeitando a configuração por setor quando houver.
func (d Definicao) opcoesDo(cp Checkpoint) []string {
	if len(cp.Opcoes) > 0 {
		return cp.Opcoes
	}
	if setoriais, ok := OpcoesPorSetor[d.Setor]; ok {
		return setoriais
	}
	return OpcoesConformidade
}

// Validar aplica as regras de rascunho/finalização sobre as respostas.
// Rascunho: só valida o que veio preenchido. Finalização: todo checkpoint é
// obrigatório e anexos exigidos precisam de pelo menos um arquivo.
func (d Definicao) Validar(dados map[string]interface{}, rascunho bool) error {
	for _, cp := range d.Checkpoints {
		valor, _ := dados[cp.Campo].(string)

		if valor == "" {
			if rascunho {
				continue
			}
			return fmt.Errorf("o item '%s' é obrigatório", cp.Rotulo)
		}

		if cp.TipoResposta == RespostaOpcao && !contem(d.opcoesDo(cp), valor) {
			return fmt.Errorf("resposta '%s' não é válida para o item '%s'", valor, cp.Rotulo)
		}

		if cp.AnexoObrigatorio && !rascunho {
			if len(anexosDo(dados, cp.Campo)) == 0 {
				return fmt.Errorf("o item '%s' exige pelo menos um anexo", cp.Rotulo)
			}
		}
	}
	return nil
}

// anexosDo lê a lista de anexos de um checkpoint com a regra defensiva usual.
func anexosDo(dados map[string]interface{}, campo string) anexo.Lista {
	bruto, ok := dados[campo+"_anexos"]
	if !ok {
		return anexo.Lista{}
	}
	switch v := bruto.(type) {
	case string:
		var l anexo.Lista
		_ = l.Scan(v)
		return l
	case []interface{}:
		l := make(anexo.Lista, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			nome, _ := m["filename"].(string)
			url, _ := m["url"].(string)
			if nome != "" || url != "" {
				l = append(l, anexo.Anexo{Filename: nome, URL: url})
			}
		}
		return l
	default:
		return anexo.Lista{}
	}
}

func contem(opcoes []string, valor string) bool {
	for _, o := range opcoes {
		if o == valor {
			return true
		}
	}
	return false
}
