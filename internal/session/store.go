package session

import (
	"context"
	"errors"
)

// ErrNotFound indica token desconhecido ou sessão expirada.
var ErrNotFound = errors.New("session not found")

// Store guarda sessões opacas de barbeiros autenticados. O token é o
// valor do cookie; o conteúdo é apenas o id do usuário.
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)
	Get(ctx context.Context, token string) (uint, error)
	Delete(ctx context.Context, token string) error
}
