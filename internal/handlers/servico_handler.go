package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/httpresp"
	"github.com/barbearia-sys/barbearia-api/internal/models"
)

type ServicoHandler struct {
	db *gorm.DB
}

func NewServicoHandler(db *gorm.DB) *ServicoHandler {
	return &ServicoHandler{db: db}
}

// --------- Requests ---------

type CreateServicoRequest struct {
	Nome            string   `json:"nome"`
	Valor           *float64 `json:"valor"`
	DuracaoEstimada *int     `json:"duracao_estimada"`
	Descricao       string   `json:"descricao"`
	Ativo           *bool    `json:"ativo"`
}

type UpdateServicoRequest struct {
	Nome            *string  `json:"nome"`
	Valor           *float64 `json:"valor"`
	DuracaoEstimada *int     `json:"duracao_estimada"`
	Descricao       *string  `json:"descricao"`
	Ativo           *bool    `json:"ativo"`
}

// --------- Handlers ---------

// List é público: o site da barbearia mostra os serviços ativos sem
// login. Inativos ficam de fora.
func (h *ServicoHandler) List(c *gin.Context) {
	var servicos []models.Servico
	if err := h.db.Where("ativo = ?", true).Find(&servicos).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.List(c, servicos)
}

// ListAll inclui os inativos; só para barbeiros autenticados.
func (h *ServicoHandler) ListAll(c *gin.Context) {
	var servicos []models.Servico
	if err := h.db.Find(&servicos).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.List(c, servicos)
}

func (h *ServicoHandler) Create(c *gin.Context) {
	var req CreateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nome, valor e duração estimada são obrigatórios")
		return
	}

	if req.Nome == "" || req.Valor == nil || req.DuracaoEstimada == nil {
		httperr.BadRequest(c, "Nome, valor e duração estimada são obrigatórios")
		return
	}

	if *req.Valor <= 0 {
		httperr.BadRequest(c, "Valor deve ser maior que zero")
		return
	}

	if *req.DuracaoEstimada <= 0 {
		httperr.BadRequest(c, "Duração estimada deve ser maior que zero")
		return
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	servico := models.Servico{
		Nome:            req.Nome,
		Valor:           *req.Valor,
		DuracaoEstimada: *req.DuracaoEstimada,
		Descricao:       req.Descricao,
		Ativo:           ativo,
	}

	if err := h.db.Create(&servico).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Serviço criado com sucesso",
		"servico": servico,
	})
}

func (h *ServicoHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	var servico models.Servico
	if err := h.db.First(&servico, id).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	httpresp.OK(c, servico)
}

func (h *ServicoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	var servico models.Servico
	if err := h.db.First(&servico, id).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	var req UpdateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	if req.Valor != nil && *req.Valor <= 0 {
		httperr.BadRequest(c, "Valor deve ser maior que zero")
		return
	}
	if req.DuracaoEstimada != nil && *req.DuracaoEstimada <= 0 {
		httperr.BadRequest(c, "Duração estimada deve ser maior que zero")
		return
	}

	if req.Nome != nil {
		servico.Nome = *req.Nome
	}
	if req.Valor != nil {
		servico.Valor = *req.Valor
	}
	if req.DuracaoEstimada != nil {
		servico.DuracaoEstimada = *req.DuracaoEstimada
	}
	if req.Descricao != nil {
		servico.Descricao = *req.Descricao
	}
	if req.Ativo != nil {
		servico.Ativo = *req.Ativo
	}

	if err := h.db.Save(&servico).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Serviço atualizado com sucesso",
		"servico": servico,
	})
}

// Delete desativa em vez de remover, preservando o histórico de
// agendamentos que referenciam o serviço.
func (h *ServicoHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	var servico models.Servico
	if err := h.db.First(&servico, id).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	servico.Ativo = false
	if err := h.db.Save(&servico).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Serviço desativado com sucesso"})
}
