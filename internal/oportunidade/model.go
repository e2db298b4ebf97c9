// internal/oportunidade/model.go
package oportunidade

import (
	"time"
)

// Oportunidade é um item do pipeline comercial. O dashboard só lê; criação e
// edição acontecem nas telas do comercial.
type Oportunidade struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Titulo  string `gorm:"size:200;not null" json:"titulo"`
	Cliente string `gorm:"size:150" json:"cliente"`
	// Vendedor guarda o nome de exibição; o ranking filtra por esse nome,
	// não por ID. Vendedores homônimos se fundem no ranking.
	Vendedor      string    `gorm:"size:100" json:"vendedor"`
	Produto       string    `gorm:"size:100" json:"produto"`
	ValorEstimado float64   `json:"valor_estimado"`
	Probabilidade int       `json:"probabilidade"`
	Estagio       string    `gorm:"size:30;index" json:"estagio"`
	Status        string    `gorm:"size:20;index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
