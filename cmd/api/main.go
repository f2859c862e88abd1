package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/barbearia-sys/barbearia-api/internal/config"
	dbpkg "github.com/barbearia-sys/barbearia-api/internal/db"
	"github.com/barbearia-sys/barbearia-api/internal/middleware"
	"github.com/barbearia-sys/barbearia-api/internal/routes"
	"github.com/barbearia-sys/barbearia-api/internal/session"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	sessions := session.NewRedisStore(redis.NewClient(redisOpts), cfg.SessionTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, sessions, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
