package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/barbearia-sys/barbearia-api/internal/domain/agendamento"
	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/httpresp"
	"github.com/barbearia-sys/barbearia-api/internal/middleware"
	ucAgendamento "github.com/barbearia-sys/barbearia-api/internal/usecase/agendamento"
)

// ======================================================
// HANDLER
// ======================================================

type AgendamentoHandler struct {
	createUC *ucAgendamento.CreateAgendamento
	updateUC *ucAgendamento.UpdateAgendamento
	cancelUC *ucAgendamento.CancelAgendamento
	repo     domain.Repository
}

func NewAgendamentoHandler(
	createUC *ucAgendamento.CreateAgendamento,
	updateUC *ucAgendamento.UpdateAgendamento,
	cancelUC *ucAgendamento.CancelAgendamento,
	repo domain.Repository,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAgendamentoRequest struct {
	ClienteID   uint   `json:"cliente_id"`
	ServicoID   uint   `json:"servico_id"`
	DataHora    string `json:"data_hora"`
	Status      string `json:"status"`
	Observacoes string `json:"observacoes"`
}

type UpdateAgendamentoRequest struct {
	DataHora    *string `json:"data_hora"`
	Status      *string `json:"status"`
	Observacoes *string `json:"observacoes"`
}

// ======================================================
// ERRO DE NEGÓCIO → HTTP
// ======================================================

func writeAgendamentoError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "cliente_not_found"):
		httperr.NotFound(c, "Cliente não encontrado")
	case httperr.IsBusiness(err, "servico_not_found"):
		httperr.NotFound(c, "Serviço não encontrado ou inativo")
	case httperr.IsBusiness(err, "agendamento_not_found"):
		httperr.NotFound(c, "Agendamento não encontrado")
	case httperr.IsBusiness(err, "invalid_datetime"):
		httperr.BadRequest(c, "Formato de data/hora inválido")
	case httperr.IsBusiness(err, "past_date"):
		httperr.BadRequest(c, "Não é possível agendar para datas passadas")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "Status inválido")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "Já existe um agendamento neste horário")
	default:
		httperr.Internal(c, err.Error())
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Cliente, serviço e data/hora são obrigatórios")
		return
	}

	if req.ClienteID == 0 || req.ServicoID == 0 || req.DataHora == "" {
		httperr.BadRequest(c, "Cliente, serviço e data/hora são obrigatórios")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAgendamento.CreateInput{
		UserID:      userID,
		ClienteID:   req.ClienteID,
		ServicoID:   req.ServicoID,
		DataHora:    req.DataHora,
		Status:      req.Status,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Agendamento criado com sucesso",
		"agendamento": ap,
	})
}

// ======================================================
// READ
// ======================================================

func (h *AgendamentoHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Agendamento não encontrado")
		return
	}

	ap, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "Agendamento não encontrado")
		return
	}

	httpresp.OK(c, ap)
}

// List aceita data_inicio/data_fim (inclusivos) e status, combináveis;
// resultado sempre em ordem crescente de data_hora.
func (h *AgendamentoHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	if v := c.Query("data_inicio"); v != "" {
		t, err := domain.ParseDataHora(v)
		if err != nil {
			httperr.BadRequest(c, "Formato de data/hora inválido")
			return
		}
		filter.DataInicio = &t
	}

	if v := c.Query("data_fim"); v != "" {
		t, err := domain.ParseDataHora(v)
		if err != nil {
			httperr.BadRequest(c, "Formato de data/hora inválido")
			return
		}
		filter.DataFim = &t
	}

	filter.Status = c.Query("status")

	aps, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.List(c, aps)
}

func (h *AgendamentoHandler) Hoje(c *gin.Context) {
	aps, err := h.repo.ListHoje(c.Request.Context(), time.Now())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.List(c, aps)
}

func (h *AgendamentoHandler) Proximos(c *gin.Context) {
	aps, err := h.repo.ListProximos(c.Request.Context(), time.Now())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.List(c, aps)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Agendamento não encontrado")
		return
	}

	var req UpdateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAgendamento.UpdateInput{
		ID:          id,
		DataHora:    req.DataHora,
		Status:      req.Status,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Agendamento atualizado com sucesso",
		"agendamento": ap,
	})
}

// ======================================================
// CANCEL (DELETE)
// ======================================================

func (h *AgendamentoHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Agendamento não encontrado")
		return
	}

	if _, err := h.cancelUC.Execute(c.Request.Context(), userID, id); err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento cancelado com sucesso"})
}
