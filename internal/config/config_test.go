package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv_Defaults(t *testing.T) {
	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "english.xlsx", cfg.Workbook.InputFile)
	assert.Equal(t, "glossary.xlsx", cfg.Workbook.OutputFile)
	assert.Equal(t, 50, cfg.Translate.ChunkSize)
	assert.Equal(t, 1, cfg.Translate.MaxWorkers)
	assert.Equal(t, 1500*time.Millisecond, cfg.Translate.RequestDelay)
	assert.Equal(t, 30, cfg.Translate.Timeout)
	assert.Equal(t, "fonts", cfg.Fonts.Dir)
	assert.Empty(t, cfg.Schedule.CronExpr)
}

func TestNewFromEnv_EnvOverrides(t *testing.T) {
	t.Setenv("TERMGLOT_INPUT_FILE", "terms.xlsx")
	t.Setenv("TERMGLOT_CHUNK_SIZE", "10")
	t.Setenv("TERMGLOT_REQUEST_DELAY", "250ms")
	t.Setenv("TERMGLOT_LANGS", "2,3")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "terms.xlsx", cfg.Workbook.InputFile)
	assert.Equal(t, 10, cfg.Translate.ChunkSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Translate.RequestDelay)
	assert.Equal(t, "2,3", cfg.Translate.Languages)
}

func TestNewFromEnv_Options(t *testing.T) {
	cfg, err := NewFromEnv(
		WithInputFile("custom.xlsx"),
		WithFontsDir("/tmp/fonts"),
		WithLanguages("all"),
		WithCronExpr("0 3 * * *"),
	)
	require.NoError(t, err)

	assert.Equal(t, "custom.xlsx", cfg.Workbook.InputFile)
	assert.Equal(t, "/tmp/fonts", cfg.Fonts.Dir)
	assert.Equal(t, "all", cfg.Translate.Languages)
	assert.Equal(t, "0 3 * * *", cfg.Schedule.CronExpr)
}

func TestNewFromEnv_InvalidChunkSize(t *testing.T) {
	t.Setenv("TERMGLOT_CHUNK_SIZE", "0")

	_, err := NewFromEnv()
	assert.Error(t, err)
}
