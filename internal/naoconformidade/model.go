// internal/naoconformidade/model.go
package naoconformidade

import (
	"errors"
	"time"

	"github.com/GraoForte/portal-api/internal/anexo"
)

// Status possíveis de uma não conformidade.
const (
	StatusAberta       = "ABERTA"
	StatusEmAnalise    = "EM_ANALISE"
	StatusPendenteAcao = "PENDENTE_ACAO"
	StatusFechada      = "FECHADA"
)

// Severidades.
const (
	SeveridadeAlta  = "ALTA"
	SeveridadeMedia = "MEDIA"
	SeveridadeBaixa = "BAIXA"
	SeveridadeNA    = "NA"
)

// Transições expostas ao usuário. Qualquer estado não fechado pode ir direto
// para FECHADA (sujeito à guarda de severidade); FECHADA é terminal.
var Transicoes = map[string]map[string]bool{
	StatusAberta:       {StatusEmAnalise: true, StatusFechada: true},
	StatusEmAnalise:    {StatusPendenteAcao: true, StatusFechada: true},
	StatusPendenteAcao: {StatusFechada: true},
	StatusFechada:      {},
}

// ErrFechamentoSemAcao é a rejeição de negócio exibida ao usuário.
var ErrFechamentoSemAcao = errors.New("não conformidade de severidade ALTA só pode ser fechada com uma ação corretiva vinculada")

// ErrTransicaoInvalida cobre qualquer par de status fora da tabela.
var ErrTransicaoInvalida = errors.New("transição de status não permitida")

type NaoConformidade struct {
	ID                  uint             `gorm:"primaryKey" json:"id"`
	Numero              string           `gorm:"size:30;uniqueIndex" json:"numero"`
	Status              string           `gorm:"size:20;default:ABERTA" json:"status"`
	Severidade          string           `gorm:"size:10" json:"severidade"`
	Descricao           string           `gorm:"type:text" json:"descricao"`
	EvidenciaObjetiva   string           `gorm:"type:text" json:"evidencia_objetiva"`
	AcaoImediata        string           `gorm:"type:text" json:"acao_imediata"`
	Tipo                string           `gorm:"size:50" json:"tipo"`
	Disposicao          string           `gorm:"size:50" json:"disposicao"`
	AcaoCorretivaID     *uint            `json:"acao_corretiva_id"`
	ProcessosEnvolvidos anexo.ListaTexto `gorm:"type:jsonb" json:"processos_envolvidos"`
	Anexos              anexo.Lista      `gorm:"type:jsonb" json:"anexos"`
	FechadoPor          *uint            `json:"fechado_por"`
	FechadoEm           *time.Time       `json:"fechado_em"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// Transicionar aplica a mudança de status em memória. Em caso de erro nada é
// mutado. FechadoPor/FechadoEm são gravados juntos, só no fechamento.
func (nc *NaoConformidade) Transicionar(novoStatus string, usuarioID uint, agora time.Time) error {
	permitidas, ok := Transicoes[nc.Status]
	if !ok || !permitidas[novoStatus] {
		return ErrTransicaoInvalida
	}
	if novoStatus == StatusFechada && nc.Severidade == SeveridadeAlta && nc.AcaoCorretivaID == nil {
		return ErrFechamentoSemAcao
	}

	nc.Status = novoStatus
	if novoStatus == StatusFechada {
		nc.FechadoPor = &usuarioID
		nc.FechadoEm = &agora
	}
	return nil
}
