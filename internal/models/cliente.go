package models

import "time"

// Cliente da barbearia, sem login próprio
type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:100;not null" json:"nome"`
	Telefone string `gorm:"size:20;not null" json:"telefone"`
	Email    string `gorm:"size:120" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
