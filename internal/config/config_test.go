package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, ,https://painel.example")
	t.Setenv("COMPARISON_SYNC_PAIRS", "@pivo:@alvo, ,@outro:@canal")
	t.Setenv("SCRAPER_REQUEST_TIMEOUT", "3s")
	t.Setenv("SCRAPER_WAIT_TIMEOUT_SECONDS", "4")
	t.Setenv("DATABASE_USER", "youstats")
	t.Setenv("DATABASE_PASSWORD", "segredo")
	t.Setenv("DATABASE_URL", "db:5432/youstats")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://painel.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, []string{"@pivo:@alvo", "@outro:@canal"}, cfg.ComparisonSync.Pairs)
	assert.Equal(t, 3*time.Second, cfg.Scraper.RequestTimeout)
	assert.Equal(t, 4*time.Second, cfg.Scraper.WaitTimeout())
	assert.Equal(t, 200, cfg.Scraper.MaxScrollAttempts)
	assert.Equal(t, "postgres://youstats:segredo@db:5432/youstats", cfg.Database.DSN)
}

func TestCompact(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, compact([]string{" a ", "", "  ", "b"}))
	assert.Empty(t, compact(nil))
}
