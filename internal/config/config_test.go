package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{"ENV", "DATABASE_PATH", "SALES_BOT_TOKEN", "RESULTS_BOT_TOKEN", "ADMIN_ID"}

func TestLoad(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("DATABASE_PATH", "/data/reports.db")
	t.Setenv("SALES_BOT_TOKEN", "sales-token")
	t.Setenv("RESULTS_BOT_TOKEN", "results-token")
	t.Setenv("ADMIN_ID", "123456789")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/data/reports.db", cfg.DatabasePath)
	assert.Equal(t, "sales-token", cfg.SalesBotToken)
	assert.Equal(t, "results-token", cfg.ResultsBotToken)
	assert.Equal(t, int64(123456789), cfg.AdminID)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range configVars {
		// t.Setenv регистрирует восстановление, Unsetenv действительно убирает
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "bot.db", cfg.DatabasePath)
	assert.Empty(t, cfg.SalesBotToken)
	assert.Zero(t, cfg.AdminID)
}
