// internal/usuario/model.go
package usuario

import (
	"time"
)

// Usuario é quem acessa o portal (comercial, qualidade ou administração).
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // não expõe a senha no JSON
	Setor     string    `gorm:"size:50" json:"setor"`
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	Ativo     bool      `gorm:"default:true" json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
