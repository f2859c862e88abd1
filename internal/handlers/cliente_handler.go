package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/httpresp"
	"github.com/barbearia-sys/barbearia-api/internal/models"
)

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

// --------- Requests ---------

type CreateClienteRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

type UpdateClienteRequest struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
}

// --------- Handlers ---------

func (h *ClienteHandler) List(c *gin.Context) {
	var clientes []models.Cliente
	if err := h.db.Find(&clientes).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	httpresp.List(c, clientes)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nome e telefone são obrigatórios")
		return
	}

	if req.Nome == "" || req.Telefone == "" {
		httperr.BadRequest(c, "Nome e telefone são obrigatórios")
		return
	}

	cliente := models.Cliente{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
	}

	if err := h.db.Create(&cliente).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cliente criado com sucesso",
		"cliente": cliente,
	})
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	httpresp.OK(c, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	if req.Nome != nil {
		cliente.Nome = *req.Nome
	}
	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}

	if err := h.db.Save(&cliente).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cliente atualizado com sucesso",
		"cliente": cliente,
	})
}

// Delete remove o registro de verdade. Clientes são a única entidade
// com remoção física; agendamentos antigos ficam com a referência
// pendurada.
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	if err := h.db.Delete(&cliente).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cliente removido com sucesso"})
}

func (h *ClienteHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		httperr.BadRequest(c, "Parâmetro de busca é obrigatório")
		return
	}

	like := "%" + q + "%"

	var clientes []models.Cliente
	if err := h.db.
		Where("nome LIKE ? OR telefone LIKE ?", like, like).
		Find(&clientes).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.List(c, clientes)
}
