package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cada línea debe llevar el nombre del servicio para correlación.
func TestNew_IncluyeCampoService(t *testing.T) {
	l := New(Config{Service: "granja-pro", Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	out := buf.String()
	assert.Contains(t, out, `"service":"granja-pro"`)
	assert.Contains(t, out, `"message":"arranque"`)
}

func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	l := New(Config{Service: "granja-pro", Level: "gritando"})
	require.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelExplicito(t *testing.T) {
	l := New(Config{Service: "granja-pro", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}
