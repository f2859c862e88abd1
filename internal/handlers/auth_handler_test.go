package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia-sys/barbearia-api/internal/middleware"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
		expectedError  string
	}{
		{
			name: "sucesso",
			body: map[string]any{
				"username": "joao",
				"email":    "joao@example.com",
				"password": "senha123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "password faltando",
			body: map[string]any{
				"username": "joao",
				"email":    "joao@example.com",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Username, email e password são obrigatórios",
		},
		{
			name: "username faltando",
			body: map[string]any{
				"email":    "joao@example.com",
				"password": "senha123",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Username, email e password são obrigatórios",
		},
		{
			name: "email inválido",
			body: map[string]any{
				"username": "joao",
				"email":    "nao-e-email",
				"password": "senha123",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r, _ := setupEnv(t)

			w := doJSON(t, r, http.MethodPost, "/api/register", tt.body, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)

			body := decodeBody(t, w)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}

			user := body["user"].(map[string]any)
			assert.Equal(t, "joao", user["username"])
			assert.Equal(t, "joao@example.com", user["email"])
			// o hash nunca sai na resposta
			assert.NotContains(t, user, "password_hash")
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	_, r, _ := setupEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]any{
		"username": "joao", "email": "joao@example.com", "password": "senha123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// mesmo username, email diferente
	w = doJSON(t, r, http.MethodPost, "/api/register", map[string]any{
		"username": "joao", "email": "outro@example.com", "password": "senha123",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username já existe", decodeBody(t, w)["error"])

	// mesmo email, username diferente
	w = doJSON(t, r, http.MethodPost, "/api/register", map[string]any{
		"username": "maria", "email": "joao@example.com", "password": "senha123",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email já existe", decodeBody(t, w)["error"])
}

func TestLoginAndMe(t *testing.T) {
	_, r, _ := setupEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]any{
		"username": "joao", "email": "joao@example.com", "password": "senha123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// credenciais erradas
	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
		"username": "joao", "password": "errada",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Credenciais inválidas", decodeBody(t, w)["error"])

	// campos faltando
	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
		"username": "joao",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// sucesso: sessão vem no cookie
	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]any{
		"username": "joao", "password": "senha123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)
	require.NotEmpty(t, sessionCookie.Value)

	// /me sem cookie
	w = doJSON(t, r, http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// /me com cookie
	w = doJSON(t, r, http.MethodGet, "/api/me", nil, sessionCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "joao", decodeBody(t, w)["username"])
}

func TestMeUserDeleted(t *testing.T) {
	db, r, store := setupEnv(t)

	user, cookie := authCookie(t, db, store)
	require.NoError(t, db.Delete(user).Error)

	// sessão ainda válida, usuário sumiu
	w := doJSON(t, r, http.MethodGet, "/api/me", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuário não encontrado", decodeBody(t, w)["error"])
}

func TestLogout(t *testing.T) {
	db, r, store := setupEnv(t)

	_, cookie := authCookie(t, db, store)

	w := doJSON(t, r, http.MethodPost, "/api/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// sessão invalidada
	w = doJSON(t, r, http.MethodGet, "/api/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// logout de novo (e sem cookie nenhum) continua 200
	w = doJSON(t, r, http.MethodPost, "/api/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/logout", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
