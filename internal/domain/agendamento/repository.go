package agendamento

import (
	"context"
	"time"

	"github.com/barbearia-sys/barbearia-api/internal/models"
)

// ListFilter combina os filtros opcionais da listagem geral.
// DataInicio/DataFim são limites inclusivos sobre data_hora.
type ListFilter struct {
	DataInicio *time.Time
	DataFim    *time.Time
	Status     string
}

type Repository interface {
	// -------- Referências --------
	GetCliente(
		ctx context.Context,
		id uint,
	) (*models.Cliente, error)

	GetServicoAtivo(
		ctx context.Context,
		id uint,
	) (*models.Servico, error)

	// -------- Criação com checagem de conflito --------
	//
	// CreateScheduled verifica a janela [data_hora − janela,
	// data_hora + janela] contra agendamentos scheduled/confirmed e
	// insere, tudo dentro de uma única transação. Conflito retorna
	// httperr.ErrBusiness("time_conflict").
	CreateScheduled(
		ctx context.Context,
		ap *models.Agendamento,
		janela time.Duration,
	) error

	// -------- Leitura --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Agendamento, error)

	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Agendamento, error)

	ListHoje(
		ctx context.Context,
		now time.Time,
	) ([]models.Agendamento, error)

	ListProximos(
		ctx context.Context,
		now time.Time,
	) ([]models.Agendamento, error)

	// -------- Mutação --------
	Update(
		ctx context.Context,
		ap *models.Agendamento,
	) error
}
