package agendamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataHoraComOffset(t *testing.T) {
	got, err := ParseDataHora("2026-09-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC), got.UTC())

	got, err = ParseDataHora("2026-09-01T10:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 13, 30, 0, 0, time.UTC), got.UTC())
}

func TestParseDataHoraSemOffset(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-09-01T10:30:00", time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)},
		{"2026-09-01T10:30", time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)},
		{"2026-09-01 10:30:00", time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)},
		{"2026-09-01 10:30", time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)},
		{"2026-09-01", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		{"  2026-09-01T10:30:00  ", time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDataHora(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDataHoraInvalida(t *testing.T) {
	for _, in := range []string{"", "amanhã", "01/09/2026", "2026-13-01", "10:30"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDataHora(in)
			assert.Error(t, err)
		})
	}
}
