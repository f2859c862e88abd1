package agendamento

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Ciclo de vida pretendido: scheduled → confirmed → completed/cancelled.
// O update da API não força essas transições: qualquer status válido
// sobrescreve o atual, e cancelar é sempre permitido, inclusive repetido.

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Blocking indica se o agendamento ocupa horário para fins de conflito.
// Cancelados e concluídos liberam a agenda.
func (s Status) Blocking() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// BlockingStatuses é o filtro usado nas consultas de conflito e nas
// listagens de hoje/próximos.
func BlockingStatuses() []string {
	return []string{string(StatusScheduled), string(StatusConfirmed)}
}

func InitialStatus() Status {
	return StatusScheduled
}
