package agendamento

import (
	"fmt"
	"strings"
	"time"
)

// layouts aceitos quando o timestamp vem sem offset; nesses casos o
// horário é interpretado no fuso do servidor.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDataHora aceita ISO-8601 com ou sem offset; o sufixo "Z" é
// tratado como UTC.
func ParseDataHora(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data/hora inválido: %q", s)
}
