package agendamento

import (
	"context"

	"github.com/barbearia-sys/barbearia-api/internal/audit"
	domain "github.com/barbearia-sys/barbearia-api/internal/domain/agendamento"
	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/models"
)

type CancelAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAgendamento {
	return &CancelAgendamento{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca o agendamento como cancelled sem remover o registro.
// Cancelar de novo é aceito e continua cancelado.
func (uc *CancelAgendamento) Execute(
	ctx context.Context,
	userID uint,
	agendamentoID uint,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetByID(ctx, agendamentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	ap.Status = string(domain.StatusCancelled)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "agendamento_cancelled",
		Entity:   "agendamento",
		EntityID: &ap.ID,
	})

	return ap, nil
}
