package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 14, cfg.MarketData.LookbackDays)
		require.Equal(t, 7, cfg.Benchmark.StaleWindowDays)
		require.Equal(t, 30, cfg.XIRR.BoundaryLookbackDays)
		require.Equal(t, 2*time.Second, cfg.MarketData.FetchDelayMin)
		require.Equal(t, "0 8 * * *", cfg.Scheduler.FullSync)
		require.Equal(t, []string{"0 15 * * *", "0 22 * * *"}, cfg.Scheduler.PriceRefresh)
		require.Equal(t, "0 6 * * 1,4", cfg.Scheduler.AnalystRatings)
		require.Equal(t, 72*time.Hour, cfg.AnalystRatings.StaleAfter)
		require.Equal(t, "https://query2.finance.yahoo.com", cfg.Yahoo.BaseURL)
		require.False(t, cfg.Alpaca.Enabled())
	})

	t.Run("file and env overrides", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		err := os.WriteFile(path, []byte("database:\n  host: db.internal\n  port: 6543\nbenchmark:\n  stale_window_days: 3\n"), 0o600)
		require.NoError(t, err)
		t.Setenv("TRACKER_DATABASE_NAME", "tracker_prod")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "db.internal", cfg.Database.Host)
		require.Equal(t, 6543, cfg.Database.Port)
		require.Equal(t, "tracker_prod", cfg.Database.Name)
		require.Equal(t, 3, cfg.Benchmark.StaleWindowDays)
		require.Equal(t,
			"host=db.internal port=6543 user=postgres password=postgres dbname=tracker_prod sslmode=disable",
			cfg.Database.ConnectionString(),
		)
	})

	t.Run("invalid delays", func(t *testing.T) {
		t.Setenv("TRACKER_MARKET_DATA_FETCH_DELAY_MAX", "1s")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
