package l1_service

import (
	"context"
	"fmt"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
	"time"
)

type BenchmarkPriceService interface {
	EnsurePrices(ctx context.Context, benchmark domain.Benchmark, start, end time.Time) (int, error)
	BulkLoad(ctx context.Context, benchmarkKey string, start, end time.Time) (domain.Snapshot, error)
}

type benchmarkPriceServiceHandler struct {
	BenchmarkPriceRepository repository.BenchmarkPriceRepository
	YahooRepository          repository.YahooRepository
	EmptyFetches             *emptyFetchCache
}

func NewBenchmarkPriceService(
	benchmarkPriceRepository repository.BenchmarkPriceRepository,
	yahooRepository repository.YahooRepository,
) BenchmarkPriceService {
	return benchmarkPriceServiceHandler{
		BenchmarkPriceRepository: benchmarkPriceRepository,
		YahooRepository:          yahooRepository,
		EmptyFetches:             newEmptyFetchCache(emptyFetchTTL, nil),
	}
}

func (h benchmarkPriceServiceHandler) BulkLoad(ctx context.Context, benchmarkKey string, start, end time.Time) (domain.Snapshot, error) {
	return h.BenchmarkPriceRepository.BulkLoad(ctx, benchmarkKey, start, end)
}

func (h benchmarkPriceServiceHandler) EnsurePrices(ctx context.Context, benchmark domain.Benchmark, start, end time.Time) (int, error) {
	cached, err := h.BenchmarkPriceRepository.BulkLoad(ctx, benchmark.Key, start, end)
	if err != nil {
		return 0, err
	}
	from, to, ok := h.EmptyFetches.missingRange(benchmark.Key, cached.Dates(benchmark.Key), start, end)
	if !ok {
		return 0, nil
	}

	bars, err := h.YahooRepository.GetDailyCloses(ctx, benchmark.Ticker, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s prices: %w", benchmark.Key, err)
	}

	models := []model.BenchmarkPrice{}
	barDates := []time.Time{}
	for _, bar := range bars {
		barDates = append(barDates, bar.Date)
		models = append(models, model.BenchmarkPrice{
			BenchmarkKey: benchmark.Key,
			Date:         bar.Date,
			Price:        bar.Close,
			Currency:     benchmark.Currency,
		})
	}
	err = h.BenchmarkPriceRepository.Add(ctx, nil, models)
	if err != nil {
		return 0, err
	}
	h.EmptyFetches.record(benchmark.Key, from, to, barDates)

	return len(models), nil
}
