package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barbearia-sys/barbearia-api/internal/config"
	dbpkg "github.com/barbearia-sys/barbearia-api/internal/db"
	"github.com/barbearia-sys/barbearia-api/internal/middleware"
	"github.com/barbearia-sys/barbearia-api/internal/models"
	"github.com/barbearia-sys/barbearia-api/internal/routes"
	"github.com/barbearia-sys/barbearia-api/internal/session"
)

// setupEnv monta a API completa contra sqlite em memória, com o
// MemoryStore no lugar do Redis.
func setupEnv(t *testing.T) (*gorm.DB, *gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	store := session.NewMemoryStore(time.Hour)
	cfg := &config.Config{ServerPort: "8080", SessionTTL: time.Hour}

	r := gin.New()
	routes.RegisterRoutes(r, db, store, cfg)

	return db, r, store
}

// authCookie cria um barbeiro direto no banco e uma sessão válida.
func authCookie(t *testing.T, db *gorm.DB, store session.Store) (*models.User, *http.Cookie) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     "barbeiro",
		Email:        "barbeiro@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := store.Create(context.Background(), user.ID)
	require.NoError(t, err)

	return &user, &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}
