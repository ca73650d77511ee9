package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info().Msg("filtered out")
	assert.Empty(t, buf.String())

	log.Warn().Str("stage", "offer").Msg("cart expired")
	assert.Contains(t, buf.String(), "cart expired")
	assert.Contains(t, buf.String(), `"stage":"offer"`)
}

func TestNew_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New("debug", true)
		_ = New("info", false)
	})
}
