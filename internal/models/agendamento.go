package models

import "time"

type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Sem FK no banco: clientes têm remoção física e agendamentos
	// antigos ficam com a referência pendurada.
	ClienteID uint    `json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:-" json:"cliente"`

	ServicoID uint    `json:"servico_id"`
	Servico   Servico `gorm:"constraint:-" json:"servico"`

	DataHora time.Time `json:"data_hora"`

	// scheduled | confirmed | completed | cancelled
	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Observacoes string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `json:"created_at"`
}
