package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 300, cfg.Parser.MinTextLength)
	assert.Equal(t, 200, cfg.Parser.OCRDPI)
	assert.Equal(t, "eng", cfg.Parser.OCRLanguage)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PARSER_MIN_TEXT_LENGTH", "500")
	t.Setenv("PARSER_OCR_LANG", "hin")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 500, cfg.Parser.MinTextLength)
	assert.Equal(t, "hin", cfg.Parser.OCRLanguage)
}
