// internal/formulario/model.go
package formulario

import (
	"time"
)

// Registro é uma submissão de checklist para uma OPD (ordem de produção).
type Registro struct {
	ID            uint                   `gorm:"primaryKey" json:"id"`
	Tipo          string                 `gorm:"size:60;index:idx_tipo_opd" json:"tipo"`
	NumeroOPD     string                 `gorm:"size:30;index:idx_tipo_opd" json:"numero_opd"`
	AtividadeID   *uint                  `json:"atividade_id"`
	Dados         map[string]interface{} `gorm:"type:jsonb;serializer:json" json:"dados_formulario"`
	PreenchidoPor string                 `gorm:"size:100" json:"preenchido_por"`
	Rascunho      bool                   `gorm:"column:is_rascunho" json:"is_rascunho"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
