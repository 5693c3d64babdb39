package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database       DatabaseConfig       `mapstructure:"database"`
	Server         ServerConfig         `mapstructure:"server"`
	MarketData     MarketDataConfig     `mapstructure:"market_data"`
	Benchmark      BenchmarkConfig      `mapstructure:"benchmark"`
	XIRR           XIRRConfig           `mapstructure:"xirr"`
	Alpaca         AlpacaConfig         `mapstructure:"alpaca"`
	Frankfurter    FrankfurterConfig    `mapstructure:"frankfurter"`
	Yahoo          YahooConfig          `mapstructure:"yahoo"`
	AnalystRatings AnalystRatingsConfig `mapstructure:"analyst_ratings"`
	Scheduler      SchedulerConfig      `mapstructure:"scheduler"`
	Lots           LotsConfig           `mapstructure:"lots"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

type MarketDataConfig struct {
	LookbackDays      int           `mapstructure:"lookback_days"`
	FetchDelayMin     time.Duration `mapstructure:"fetch_delay_min"`
	FetchDelayMax     time.Duration `mapstructure:"fetch_delay_max"`
	BenchmarkDelayMin time.Duration `mapstructure:"benchmark_delay_min"`
	BenchmarkDelayMax time.Duration `mapstructure:"benchmark_delay_max"`
	SyncDaysBack      int           `mapstructure:"sync_days_back"`
	RefreshDaysBack   int           `mapstructure:"refresh_days_back"`
}

type BenchmarkConfig struct {
	StaleWindowDays int `mapstructure:"stale_window_days"`
}

type XIRRConfig struct {
	BoundaryLookbackDays int `mapstructure:"boundary_lookback_days"`
	ShortPeriodDays      int `mapstructure:"short_period_days"`
}

type AlpacaConfig struct {
	ApiKey    string `mapstructure:"api_key"`
	ApiSecret string `mapstructure:"api_secret"`
	Endpoint  string `mapstructure:"endpoint"`
}

func (a AlpacaConfig) Enabled() bool {
	return a.ApiKey != "" && a.ApiSecret != ""
}

type FrankfurterConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SchedulerConfig cron specs are evaluated in UTC. The analyst rating job
// only refreshes ratings older than analyst_ratings.stale_after.
type SchedulerConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	FullSync       string        `mapstructure:"full_sync"`
	PriceRefresh   []string      `mapstructure:"price_refresh"`
	AnalystRatings string        `mapstructure:"analyst_ratings"`
	RunOnStartup   bool          `mapstructure:"run_on_startup"`
	JobTimeout     time.Duration `mapstructure:"job_timeout"`
}

type YahooConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AnalystRatingsConfig struct {
	StaleAfter time.Duration `mapstructure:"stale_after"`
}

type LotsConfig struct {
	CsvPath string `mapstructure:"csv_path"`
}

// Load reads path (if non-empty) and overlays TRACKER_* environment
// variables, e.g. TRACKER_DATABASE_HOST.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "portfolio")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("server.port", 3009)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("market_data.lookback_days", 14)
	v.SetDefault("market_data.fetch_delay_min", "2s")
	v.SetDefault("market_data.fetch_delay_max", "5s")
	v.SetDefault("market_data.benchmark_delay_min", "1s")
	v.SetDefault("market_data.benchmark_delay_max", "2s")
	v.SetDefault("market_data.sync_days_back", 730)
	v.SetDefault("market_data.refresh_days_back", 7)

	v.SetDefault("benchmark.stale_window_days", 7)

	v.SetDefault("xirr.boundary_lookback_days", 30)
	v.SetDefault("xirr.short_period_days", 30)

	v.SetDefault("alpaca.api_key", "")
	v.SetDefault("alpaca.api_secret", "")
	v.SetDefault("alpaca.endpoint", "https://data.alpaca.markets")

	v.SetDefault("frankfurter.base_url", "https://api.frankfurter.app")
	v.SetDefault("frankfurter.timeout", "30s")

	v.SetDefault("yahoo.base_url", "https://query2.finance.yahoo.com")
	v.SetDefault("yahoo.timeout", "30s")

	v.SetDefault("analyst_ratings.stale_after", "72h")

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.full_sync", "0 8 * * *")
	v.SetDefault("scheduler.price_refresh", []string{"0 15 * * *", "0 22 * * *"})
	v.SetDefault("scheduler.analyst_ratings", "0 6 * * 1,4")
	v.SetDefault("scheduler.run_on_startup", false)
	v.SetDefault("scheduler.job_timeout", "2h")

	v.SetDefault("lots.csv_path", "lots.csv")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.MarketData.LookbackDays < 0 {
		return errors.New("market_data.lookback_days must not be negative")
	}
	if c.MarketData.FetchDelayMax < c.MarketData.FetchDelayMin {
		return errors.New("market_data.fetch_delay_max must be >= fetch_delay_min")
	}
	if c.MarketData.BenchmarkDelayMax < c.MarketData.BenchmarkDelayMin {
		return errors.New("market_data.benchmark_delay_max must be >= benchmark_delay_min")
	}
	if c.AnalystRatings.StaleAfter < 0 {
		return errors.New("analyst_ratings.stale_after must not be negative")
	}
	if c.Benchmark.StaleWindowDays < 0 {
		return errors.New("benchmark.stale_window_days must not be negative")
	}
	return nil
}
