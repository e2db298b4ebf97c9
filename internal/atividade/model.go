// internal/atividade/model.go
package atividade

import (
	"time"
)

// Tipos de atividade comercial.
const (
	TipoLigacao = "ligacao"
	TipoEmail   = "email"
	TipoReuniao = "reuniao"
	TipoVisita  = "visita"
	TipoOutro   = "outro"
)

type Atividade struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Titulo       string     `gorm:"size:200;not null" json:"titulo"`
	Tipo         string     `gorm:"size:20" json:"tipo"`
	DataPrevista *time.Time `json:"data_prevista"`
	Concluida    bool       `gorm:"default:false" json:"concluida"`
	Cliente      string     `gorm:"size:150" json:"cliente"`
	Oportunidade string     `gorm:"size:200" json:"oportunidade"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Atrasada indica atividade pendente com data prevista no passado.
func (a Atividade) Atrasada(agora time.Time) bool {
	return !a.Concluida && a.DataPrevista != nil && a.DataPrevista.Before(agora)
}

// Totais é o agregado exibido no banner do dashboard.
type Totais struct {
	Pendentes     int `json:"pendentes"`
	Concluidas    int `json:"concluidas"`
	Atrasadas     int `json:"atrasadas"`
	Proximos7Dias int `json:"proximos_7_dias"`
}

// CalcularTotais deriva o agregado a partir da lista completa.
func CalcularTotais(atividades []Atividade, agora time.Time) Totais {
	var t Totais
	limite := agora.AddDate(0, 0, 7)
	for _, a := range atividades {
		if a.Concluida {
			t.Concluidas++
			continue
		}
		t.Pendentes++
		if a.Atrasada(agora) {
			t.Atrasadas++
		}
		if a.DataPrevista != nil && !a.DataPrevista.Before(agora) && a.DataPrevista.Before(limite) {
			t.Proximos7Dias++
		}
	}
	return t
}
