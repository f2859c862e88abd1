package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbearia-sys/barbearia-api/internal/domain/agendamento"
	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetCliente(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *AgendamentoGormRepository) GetServicoAtivo(
	ctx context.Context,
	id uint,
) (*models.Servico, error) {

	var servico models.Servico
	if err := r.db.WithContext(ctx).
		Where("id = ? AND ativo = ?", id, true).
		First(&servico).Error; err != nil {
		return nil, err
	}
	return &servico, nil
}

// --------------------------------------------------
// Criação com checagem de conflito
// --------------------------------------------------

// conflitosNaJanela monta a consulta de ocupação da janela. O lock é
// por linha, nunca sobre agregado: o Postgres rejeita FOR UPDATE
// combinado com count().
func (r *AgendamentoGormRepository) conflitosNaJanela(
	tx *gorm.DB,
	inicio, fim time.Time,
) *gorm.DB {

	q := tx.Model(&models.Agendamento{}).
		Select("id").
		Where(
			"data_hora BETWEEN ? AND ? AND status IN ?",
			inicio, fim, domain.BlockingStatuses(),
		).
		Limit(1)

	// SQLite (testes) não suporta FOR UPDATE.
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

func (r *AgendamentoGormRepository) CreateScheduled(
	ctx context.Context,
	ap *models.Agendamento,
	janela time.Duration,
) error {

	inicio := ap.DataHora.Add(-janela)
	fim := ap.DataHora.Add(janela)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ocupados []models.Agendamento
		if err := r.conflitosNaJanela(tx, inicio, fim).
			Find(&ocupados).Error; err != nil {
			return err
		}

		if len(ocupados) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Omit(clause.Associations).Create(ap).Error
	})
	if err != nil {
		return err
	}

	// devolve o registro com cliente e serviço embutidos
	return r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Servico").
		First(ap, ap.ID).Error
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Agendamento, error) {

	var ap models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Servico").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AgendamentoGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Agendamento, error) {

	q := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Servico")

	if filter.DataInicio != nil {
		q = q.Where("data_hora >= ?", *filter.DataInicio)
	}
	if filter.DataFim != nil {
		q = q.Where("data_hora <= ?", *filter.DataFim)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var aps []models.Agendamento
	if err := q.Order("data_hora ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AgendamentoGormRepository) ListHoje(
	ctx context.Context,
	now time.Time,
) ([]models.Agendamento, error) {

	inicio := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	fim := inicio.AddDate(0, 0, 1)

	var aps []models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Servico").
		Where(
			"data_hora >= ? AND data_hora < ? AND status IN ?",
			inicio, fim, domain.BlockingStatuses(),
		).
		Order("data_hora ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AgendamentoGormRepository) ListProximos(
	ctx context.Context,
	now time.Time,
) ([]models.Agendamento, error) {

	fim := now.AddDate(0, 0, 7)

	var aps []models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Servico").
		Where(
			"data_hora BETWEEN ? AND ? AND status IN ?",
			now, fim, domain.BlockingStatuses(),
		).
		Order("data_hora ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Mutação
// --------------------------------------------------

func (r *AgendamentoGormRepository) Update(
	ctx context.Context,
	ap *models.Agendamento,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AgendamentoGormRepository)(nil)
