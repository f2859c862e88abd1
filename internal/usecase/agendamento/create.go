package agendamento

import (
	"context"
	"time"

	"github.com/barbearia-sys/barbearia-api/internal/audit"
	domain "github.com/barbearia-sys/barbearia-api/internal/domain/agendamento"
	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID uint // barbeiro autenticado, só para auditoria

	ClienteID uint
	ServicoID uint

	// DataHora chega cru da API; o parse acontece depois das checagens
	// de existência de cliente e serviço.
	DataHora string

	Status      string // vazio → scheduled
	Observacoes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAgendamento {
	return &CreateAgendamento{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAgendamento) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Agendamento, error) {

	// 1. Cliente precisa existir
	if _, err := uc.repo.GetCliente(ctx, in.ClienteID); err != nil {
		return nil, httperr.ErrBusiness("cliente_not_found")
	}

	// 2. Serviço precisa existir e estar ativo
	servico, err := uc.repo.GetServicoAtivo(ctx, in.ServicoID)
	if err != nil {
		return nil, httperr.ErrBusiness("servico_not_found")
	}

	// 3. Data/hora válida e não no passado (sem tolerância)
	dataHora, err := domain.ParseDataHora(in.DataHora)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}
	if dataHora.Before(time.Now()) {
		return nil, httperr.ErrBusiness("past_date")
	}

	// 4. Status inicial
	status := domain.InitialStatus()
	if in.Status != "" {
		status = domain.Status(in.Status)
		if !status.IsValid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	ap := &models.Agendamento{
		ClienteID:   in.ClienteID,
		ServicoID:   in.ServicoID,
		DataHora:    dataHora,
		Status:      string(status),
		Observacoes: in.Observacoes,
	}

	// 5. Janela de conflito: ± duração do serviço em torno do horário pedido
	janela := time.Duration(servico.DuracaoEstimada) * time.Minute

	if err := uc.repo.CreateScheduled(ctx, ap, janela); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "agendamento_conflict",
				Entity: "agendamento",
				Metadata: map[string]any{
					"data_hora":  dataHora,
					"servico_id": in.ServicoID,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "agendamento_created",
		Entity:   "agendamento",
		EntityID: &ap.ID,
	})

	return ap, nil
}
