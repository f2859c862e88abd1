package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbearia-sys/barbearia-api/internal/audit"
	"github.com/barbearia-sys/barbearia-api/internal/config"
	"github.com/barbearia-sys/barbearia-api/internal/httperr"
	"github.com/barbearia-sys/barbearia-api/internal/middleware"
	"github.com/barbearia-sys/barbearia-api/internal/models"
	"github.com/barbearia-sys/barbearia-api/internal/session"
	"github.com/barbearia-sys/barbearia-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	sessions session.Store
	audit    *audit.Dispatcher
	config   *config.Config
}

func NewAuthHandler(
	db *gorm.DB,
	sessions session.Store,
	dispatcher *audit.Dispatcher,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		db:       db,
		sessions: sessions,
		audit:    dispatcher,
		config:   cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Username, email e password são obrigatórios")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "Username, email e password são obrigatórios")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "Email inválido")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "Username já existe")
		return
	}

	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "Email já existe")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Erro ao processar senha")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Username e password são obrigatórios")
		return
	}

	if req.Username == "" || req.Password == "" {
		httperr.BadRequest(c, "Username e password são obrigatórios")
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "Credenciais inválidas")
			return
		}
		httperr.Internal(c, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas")
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, "Erro ao criar sessão")
		return
	}

	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(h.config.SessionTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_login",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso",
		"user":    user,
	})
}

// Logout é incondicional e idempotente: sem sessão ativa também
// responde 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		_ = h.sessions.Delete(c.Request.Context(), token)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		// sessão válida apontando para usuário removido
		httperr.NotFound(c, "Usuário não encontrado")
		return
	}

	c.JSON(http.StatusOK, user)
}
