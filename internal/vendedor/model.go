// internal/vendedor/model.go
package vendedor

import (
	"time"
)

// Vendedor carrega os contadores agregados que o backend mantém; o valor de
// pipeline ativo e o valor fechado por vendedor são derivados no dashboard.
type Vendedor struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Nome                string    `gorm:"size:100;not null" json:"nome"`
	Email               string    `gorm:"size:100" json:"email"`
	Ativo               bool      `gorm:"default:true;index" json:"ativo"`
	TotalOportunidades  int       `json:"total_oportunidades"`
	OportunidadesGanhas int       `json:"oportunidades_ganhas"`
	ValorGanho          float64   `json:"valor_ganho"`
	TotalClientes       int       `json:"total_clientes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
