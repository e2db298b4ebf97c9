// internal/acaocorretiva/model.go
package acaocorretiva

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/GraoForte/portal-api/internal/anexo"
	"gorm.io/gorm"
)

// Status da ação corretiva — fluxo estritamente progressivo na UI.
const (
	StatusAberta                = "ABERTA"
	StatusEmAndamento           = "EM_ANDAMENTO"
	StatusAguardandoVerificacao = "AGUARDANDO_VERIFICACAO"
	StatusFechada               = "FECHADA"
)

// Valores do campo secundário status_acoes.
const (
	AcoesEmAndamento = "EM_ANDAMENTO"
	AcoesFinalizadas = "FINALIZADAS"
)

var Transicoes = map[string]map[string]bool{
	StatusAberta:                {StatusEmAndamento: true},
	StatusEmAndamento:           {StatusAguardandoVerificacao: true},
	StatusAguardandoVerificacao: {StatusFechada: true},
	StatusFechada:               {},
}

var (
	ErrTransicaoInvalida  = errors.New("transição de status não permitida")
	ErrAcoesObrigatorias  = errors.New("descreva as ações antes de iniciar o tratamento")
	ErrAnaliseObrigatoria = errors.New("informe se as ações foram finalizadas antes de enviar para verificação")
)

type AcaoCorretiva struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Numero string `gorm:"size:30;uniqueIndex" json:"numero"`
	Status string `gorm:"size:30;default:ABERTA" json:"status"`

	Falha     string `gorm:"type:text" json:"falha"`
	Causas    string `gorm:"type:text" json:"causas"`
	Subcausas string `gorm:"type:text" json:"subcausas"`
	Acoes     string `gorm:"type:text" json:"acoes"`

	// Pares de alias legado/atual: todo caminho de escrita grava os dois com
	// o mesmo valor (hook BeforeSave). O campo canônico é o primeiro.
	Responsaveis         string `gorm:"size:255" json:"responsaveis"`
	ResponsavelPrincipal string `gorm:"size:255" json:"responsavel_principal"`
	Prazo                string `gorm:"size:20" json:"prazo"`
	PrazoConclusao       string `gorm:"size:20" json:"prazo_conclusao"`

	StatusAcoes string `gorm:"size:20" json:"status_acoes"`

	// Análise de eficácia — preenchida ao entrar em AGUARDANDO_VERIFICACAO.
	AcoesFinalizadas   string `gorm:"size:10" json:"acoes_finalizadas"`
	SituacaoFinal      string `gorm:"type:text" json:"situacao_final"`
	ResponsavelAnalise string `gorm:"size:255" json:"responsavel_analise"`
	DataAnalise        string `gorm:"size:20" json:"data_analise"`

	Anexos    anexo.Lista `gorm:"type:jsonb" json:"anexos"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// BeforeSave mantém os pares de alias sincronizados na borda do storage —
// nenhum handler repete essa regra.
func (ac *AcaoCorretiva) BeforeSave(tx *gorm.DB) error {
	if ac.Responsaveis == "" {
		ac.Responsaveis = ac.ResponsavelPrincipal
	}
	ac.ResponsavelPrincipal = ac.Responsaveis
	if ac.Prazo == "" {
		ac.Prazo = ac.PrazoConclusao
	}
	ac.PrazoConclusao = ac.Prazo
	return nil
}

// AfterFind normaliza o shape legado do campo de ações em toda leitura.
func (ac *AcaoCorretiva) AfterFind(tx *gorm.DB) error {
	ac.Acoes = NormalizarAcoes(ac.Acoes)
	return nil
}

// NormalizarAcoes converte o shape legado `[{"descricao":...}, ...]` numa
// string com uma ação por linha. Conversão de mão única: nunca é
// reconstruída de volta em objetos.
func NormalizarAcoes(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "[") {
		return raw
	}
	var itens []struct {
		Descricao string `json:"descricao"`
	}
	if err := json.Unmarshal([]byte(s), &itens); err != nil {
		return raw
	}
	linhas := make([]string, 0, len(itens))
	for _, it := range itens {
		if it.Descricao != "" {
			linhas = append(linhas, it.Descricao)
		}
	}
	return strings.Join(linhas, "\n")
}

// TransicaoRequest é o corpo do PATCH de status: a mudança carrega os campos
// extras gravados atomicamente com ela.
type TransicaoRequest struct {
	Status             string          `json:"status"`
	Acoes              json.RawMessage `json:"acoes"`
	Responsaveis       string          `json:"responsaveis"`
	Prazo              string          `json:"prazo"`
	AcoesFinalizadas   string          `json:"acoes_finalizadas"`
	SituacaoFinal      string          `json:"situacao_final"`
	ResponsavelAnalise string          `json:"responsavel_analise"`
	DataAnalise        string          `json:"data_analise"`
}

// AcoesTexto devolve o campo de ações do payload já normalizado; aceita
// string simples ou o array legado de objetos.
func (req TransicaoRequest) AcoesTexto() string {
	raw := strings.TrimSpace(string(req.Acoes))
	if raw == "" || raw == "null" {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(req.Acoes, &s); err != nil {
			return ""
		}
		return s
	}
	return NormalizarAcoes(raw)
}

// Transicionar valida e aplica a mudança de status em memória, junto com os
// campos que cada transição grava. Em caso de erro nada é mutado.
func (ac *AcaoCorretiva) Transicionar(req TransicaoRequest) error {
	permitidas, ok := Transicoes[ac.Status]
	if !ok || !permitidas[req.Status] {
		return ErrTransicaoInvalida
	}

	switch req.Status {
	case StatusEmAndamento:
		acoes := strings.TrimSpace(req.AcoesTexto())
		if acoes == "" {
			return ErrAcoesObrigatorias
		}
		ac.Acoes = acoes
		ac.Responsaveis = req.Responsaveis
		ac.Prazo = req.Prazo
		ac.StatusAcoes = AcoesEmAndamento

	case StatusAguardandoVerificacao:
		if strings.TrimSpace(req.AcoesFinalizadas) == "" {
			return ErrAnaliseObrigatoria
		}
		ac.AcoesFinalizadas = req.AcoesFinalizadas
		ac.SituacaoFinal = req.SituacaoFinal
		ac.ResponsavelAnalise = req.ResponsavelAnalise
		ac.DataAnalise = req.DataAnalise
		ac.StatusAcoes = AcoesFinalizadas
	}

	ac.Status = req.Status
	return nil
}
