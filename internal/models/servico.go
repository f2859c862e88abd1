package models

import "time"

type Servico struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:100;not null" json:"nome"`

	Valor           float64 `json:"valor"`
	DuracaoEstimada int     `json:"duracao_estimada"` // em minutos
	Descricao       string  `gorm:"type:text" json:"descricao"`

	// Serviços nunca são removidos de fato; desativar preserva o
	// histórico de agendamentos que apontam para eles. Sem default no
	// banco: o gorm omitiria Ativo=false no insert e o default venceria.
	Ativo bool `json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
}
