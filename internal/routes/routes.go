package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-sys/barbearia-api/internal/audit"
	"github.com/barbearia-sys/barbearia-api/internal/config"
	"github.com/barbearia-sys/barbearia-api/internal/handlers"
	infraRepo "github.com/barbearia-sys/barbearia-api/internal/infra/repository"
	"github.com/barbearia-sys/barbearia-api/internal/middleware"
	"github.com/barbearia-sys/barbearia-api/internal/session"
	ucAgendamento "github.com/barbearia-sys/barbearia-api/internal/usecase/agendamento"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES: AGENDAMENTOS
	// ======================================================
	createAgendamentoUC := ucAgendamento.NewCreateAgendamento(
		agendamentoRepo,
		auditDispatcher,
	)

	updateAgendamentoUC := ucAgendamento.NewUpdateAgendamento(
		agendamentoRepo,
	)

	cancelAgendamentoUC := ucAgendamento.NewCancelAgendamento(
		agendamentoRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, sessions, auditDispatcher, cfg)
	clienteHandler := handlers.NewClienteHandler(db)
	servicoHandler := handlers.NewServicoHandler(db)

	agendamentoHandler := handlers.NewAgendamentoHandler(
		createAgendamentoUC,
		updateAgendamentoUC,
		cancelAgendamentoUC,
		agendamentoRepo,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (sem sessão)
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// ------------------------------
		// PÚBLICO: catálogo de serviços
		// ------------------------------
		api.GET("/servicos", servicoHandler.List)
		api.GET("/servicos/:id", servicoHandler.Get)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(sessions))
		{
			secured.GET("/me", authHandler.Me)

			secured.GET("/clientes", clienteHandler.List)
			secured.POST("/clientes", clienteHandler.Create)
			secured.GET("/clientes/search", clienteHandler.Search)
			secured.GET("/clientes/:id", clienteHandler.Get)
			secured.PUT("/clientes/:id", clienteHandler.Update)
			secured.DELETE("/clientes/:id", clienteHandler.Delete)

			secured.GET("/servicos/all", servicoHandler.ListAll)
			secured.POST("/servicos", servicoHandler.Create)
			secured.PUT("/servicos/:id", servicoHandler.Update)
			secured.DELETE("/servicos/:id", servicoHandler.Delete)

			secured.GET("/agendamentos", agendamentoHandler.List)
			secured.POST("/agendamentos", agendamentoHandler.Create)
			secured.GET("/agendamentos/hoje", agendamentoHandler.Hoje)
			secured.GET("/agendamentos/proximos", agendamentoHandler.Proximos)
			secured.GET("/agendamentos/:id", agendamentoHandler.Get)
			secured.PUT("/agendamentos/:id", agendamentoHandler.Update)
			secured.DELETE("/agendamentos/:id", agendamentoHandler.Cancel)
		}
	}
}
