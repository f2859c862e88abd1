package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"joao@barbearia.com", true},
		{"joao.silva+corte@exemplo.com.br", true},
		{"", false},
		{"sem-arroba", false},
		{"@sem-local.com", false},
		{"joao@", false},
		{"Joao Silva <joao@barbearia.com>", false},
		{"joao@barbearia.com ", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsEmailValid(tt.email))
		})
	}
}
