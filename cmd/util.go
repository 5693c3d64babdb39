package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"portfoliotracker/api"
	"portfoliotracker/internal/config"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/scheduler"
	l1_service "portfoliotracker/internal/service/l1"
	l2_service "portfoliotracker/internal/service/l2"
	l3_service "portfoliotracker/internal/service/l3"
	"portfoliotracker/pkg/frankfurter"
	"portfoliotracker/pkg/yahoo"

	_ "github.com/lib/pq"
)

type Dependencies struct {
	Config           config.Config
	Db               *sql.DB
	ApiHandler       *api.ApiHandler
	PortfolioService l2_service.PortfolioService
	BenchmarkService l2_service.BenchmarkService
	XIRRService      l2_service.XIRRService
	SyncService      l3_service.SyncService
	Scheduler        scheduler.Service
}

func CloseDependencies(deps *Dependencies) {
	deps.Scheduler.Stop()
	err := deps.Db.Close()
	if err != nil {
		logger.New().Fatalf("failed to close db: %v", err)
	}
}

// LoadConfig falls back to the file named by TRACKER_CONFIG when path is
// empty.
func LoadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv("TRACKER_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func InitializeDependencies(cfg config.Config) (*Dependencies, error) {
	dbConn, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	lookbackDays := cfg.MarketData.LookbackDays

	securityRepository := repository.NewSecurityRepository(dbConn)
	taxLotRepository := repository.NewTaxLotRepository(dbConn)
	marketPriceRepository := repository.NewMarketPriceRepository(dbConn)
	exchangeRateRepository := repository.NewExchangeRateRepository(dbConn)
	benchmarkPriceRepository := repository.NewBenchmarkPriceRepository(dbConn)
	benchmarkTimelineCacheRepository := repository.NewBenchmarkTimelineCacheRepository(dbConn)
	tickerMappingRepository := repository.NewTickerMappingRepository(dbConn)
	analystRatingRepository := repository.NewAnalystRatingRepository(dbConn)
	lotSourceRepository := repository.NewCsvLotSourceRepository(cfg.Lots.CsvPath)
	yahooRepository := repository.NewYahooRepository()
	frankfurterRepository := repository.NewFrankfurterRepository(
		frankfurter.NewClient(cfg.Frankfurter.BaseURL, cfg.Frankfurter.Timeout),
	)
	recommendationRepository := repository.NewRecommendationRepository(
		yahoo.NewClient(cfg.Yahoo.BaseURL, cfg.Yahoo.Timeout),
	)

	// alpaca is only a fallback for US listings
	var alpacaRepository repository.AlpacaRepository
	if cfg.Alpaca.Enabled() {
		alpacaRepository = repository.NewAlpacaRepository(cfg.Alpaca.ApiKey, cfg.Alpaca.ApiSecret, cfg.Alpaca.Endpoint)
	}

	priceService := l1_service.NewPriceService(
		marketPriceRepository,
		tickerMappingRepository,
		yahooRepository,
		alpacaRepository,
	)
	exchangeRateService := l1_service.NewExchangeRateService(
		exchangeRateRepository,
		frankfurterRepository,
		lookbackDays,
	)
	benchmarkPriceService := l1_service.NewBenchmarkPriceService(
		benchmarkPriceRepository,
		yahooRepository,
	)
	analystRatingService := l1_service.NewAnalystRatingService(
		analystRatingRepository,
		recommendationRepository,
		tickerMappingRepository,
	)

	portfolioService := l2_service.NewPortfolioService(
		taxLotRepository,
		securityRepository,
		analystRatingRepository,
		priceService,
		exchangeRateService,
		lookbackDays,
	)
	benchmarkService := l2_service.NewBenchmarkService(
		taxLotRepository,
		benchmarkTimelineCacheRepository,
		benchmarkPriceService,
		exchangeRateService,
		lookbackDays,
		cfg.Benchmark.StaleWindowDays,
	)
	xirrService := l2_service.NewXIRRService(
		taxLotRepository,
		priceService,
		exchangeRateService,
		lookbackDays,
		cfg.XIRR.BoundaryLookbackDays,
		cfg.XIRR.ShortPeriodDays,
	)

	syncService := l3_service.NewSyncService(
		dbConn,
		lotSourceRepository,
		securityRepository,
		taxLotRepository,
		benchmarkTimelineCacheRepository,
		priceService,
		benchmarkPriceService,
		exchangeRateService,
		analystRatingService,
		l3_service.RandomDelay(cfg.MarketData.FetchDelayMin, cfg.MarketData.FetchDelayMax),
		l3_service.RandomDelay(cfg.MarketData.BenchmarkDelayMin, cfg.MarketData.BenchmarkDelayMax),
		cfg.AnalystRatings.StaleAfter,
	)

	schedulerCtx := logger.WithLogger(context.Background(), logger.New().With("component", "scheduler"))
	schedulerService, err := scheduler.New(schedulerCtx, syncService, cfg.Scheduler, cfg.MarketData)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	apiHandler := &api.ApiHandler{
		PortfolioService: portfolioService,
		BenchmarkService: benchmarkService,
		XIRRService:      xirrService,
		SyncService:      syncService,
		Scheduler:        schedulerService,
		CorsOrigins:      cfg.Server.CorsOrigins,
	}

	return &Dependencies{
		Config:           cfg,
		Db:               dbConn,
		ApiHandler:       apiHandler,
		PortfolioService: portfolioService,
		BenchmarkService: benchmarkService,
		XIRRService:      xirrService,
		SyncService:      syncService,
		Scheduler:        schedulerService,
	}, nil
}
