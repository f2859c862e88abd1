package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-sys/barbearia-api/internal/session"
)

const (
	ContextUserID = "userID"

	// SessionCookie é o nome do cookie que carrega o token opaco.
	SessionCookie = "session_token"
)

func AuthMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			return
		}

		userID, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
