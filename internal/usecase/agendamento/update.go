package agendamento

import (
	"context"
	"time"

	domain "github.com/barbearia-sys/barbearia-api/internal/domain/agendamento"
	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/models"
)

type UpdateInput struct {
	ID uint

	// campos opcionais; nil significa "não mexer"
	DataHora    *string
	Status      *string
	Observacoes *string
}

type UpdateAgendamento struct {
	repo domain.Repository
}

func NewUpdateAgendamento(repo domain.Repository) *UpdateAgendamento {
	return &UpdateAgendamento{repo: repo}
}

// Execute remarca/atualiza um agendamento. A data nova passa pela mesma
// checagem de passado da criação, mas NÃO repassa pela checagem de
// conflito: remarcar em cima de outro horário é permitido de propósito
// (uso interno pela equipe). Status aceita qualquer valor válido,
// independente do atual.
func (uc *UpdateAgendamento) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	if in.DataHora != nil {
		novaData, err := domain.ParseDataHora(*in.DataHora)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_datetime")
		}
		if novaData.Before(time.Now()) {
			return nil, httperr.ErrBusiness("past_date")
		}
		ap.DataHora = novaData
	}

	if in.Status != nil {
		if !domain.Status(*in.Status).IsValid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		ap.Status = *in.Status
	}

	if in.Observacoes != nil {
		ap.Observacoes = *in.Observacoes
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
