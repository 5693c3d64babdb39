package l2_service

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	l1_service "portfoliotracker/internal/service/l1"
	"portfoliotracker/internal/util"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BenchmarkService simulates investing each lot's EUR cost basis into a
// benchmark index on the lot's open date.
type BenchmarkService interface {
	ComputeBenchmarkTimeline(ctx context.Context, benchmarkKey string, start, end time.Time) (*domain.BenchmarkTimeline, error)
}

type benchmarkServiceHandler struct {
	TaxLotRepository                 repository.TaxLotRepository
	BenchmarkTimelineCacheRepository repository.BenchmarkTimelineCacheRepository
	BenchmarkPriceService            l1_service.BenchmarkPriceService
	ExchangeRateService              l1_service.ExchangeRateService
	LookbackDays                     int
	StaleWindowDays                  int
	today                            func() time.Time
}

func NewBenchmarkService(
	taxLotRepository repository.TaxLotRepository,
	benchmarkTimelineCacheRepository repository.BenchmarkTimelineCacheRepository,
	benchmarkPriceService l1_service.BenchmarkPriceService,
	exchangeRateService l1_service.ExchangeRateService,
	lookbackDays int,
	staleWindowDays int,
) BenchmarkService {
	return benchmarkServiceHandler{
		TaxLotRepository:                 taxLotRepository,
		BenchmarkTimelineCacheRepository: benchmarkTimelineCacheRepository,
		BenchmarkPriceService:            benchmarkPriceService,
		ExchangeRateService:              exchangeRateService,
		LookbackDays:                     lookbackDays,
		StaleWindowDays:                  staleWindowDays,
		today:                            util.Today,
	}
}

type lotShares struct {
	openDate time.Time
	shares   decimal.Decimal
}

func (h benchmarkServiceHandler) ComputeBenchmarkTimeline(ctx context.Context, benchmarkKey string, start, end time.Time) (*domain.BenchmarkTimeline, error) {
	log := logger.FromContext(ctx).With("benchmark", benchmarkKey)

	benchmark, err := domain.GetBenchmark(benchmarkKey)
	if err != nil {
		return nil, err
	}
	start = util.TruncateToDate(start)
	end = util.TruncateToDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrInvalidDateRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	profile := domain.ProfileFromContext(ctx)
	_, endSpan := profile.StartNewSpan("read benchmark cache")
	cached, err := h.BenchmarkTimelineCacheRepository.List(ctx, benchmark.Key, start, end)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark cache: %w", err)
	}

	// rows inside the trailing window may have been computed before the
	// day's close was available, so they are always recomputed
	staleFrom := h.today().AddDate(0, 0, -h.StaleWindowDays)
	hits := map[string]domain.BenchmarkPoint{}
	for _, p := range cached {
		if p.Date.Before(staleFrom) {
			hits[p.Date.Format(time.DateOnly)] = p
		}
	}

	days := util.BusinessDays(start, end)
	missingDays := []time.Time{}
	for _, day := range days {
		if _, ok := hits[day.Format(time.DateOnly)]; !ok {
			missingDays = append(missingDays, day)
		}
	}

	computed := []domain.BenchmarkPoint{}
	if len(missingDays) > 0 {
		_, endSpan := profile.StartNewSpan("compute benchmark points")
		defer endSpan()
		computed, err = h.computePoints(ctx, benchmark, missingDays)
		if err != nil {
			return nil, err
		}

		toPersist := []domain.BenchmarkPoint{}
		for _, p := range computed {
			if p.Complete {
				toPersist = append(toPersist, p)
			}
		}
		if err := h.BenchmarkTimelineCacheRepository.Upsert(ctx, nil, benchmark.Key, toPersist); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("failed to persist benchmark cache: %s", err.Error())
		}
		log.Debugf("benchmark cache: %d hits, %d computed", len(hits), len(computed))
	}

	points := []domain.BenchmarkPoint{}
	for _, p := range hits {
		points = append(points, p)
	}
	points = append(points, computed...)
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return &domain.BenchmarkTimeline{
		Benchmark: benchmark,
		Points:    points,
	}, nil
}

// computePoints values the hypothetical benchmark holding on each of days,
// which must be sorted ascending.
func (h benchmarkServiceHandler) computePoints(ctx context.Context, benchmark domain.Benchmark, days []time.Time) ([]domain.BenchmarkPoint, error) {
	log := logger.FromContext(ctx).With("benchmark", benchmark.Key)

	lots, err := h.TaxLotRepository.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open lots: %w", err)
	}
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].OpenDate.Before(lots[j].OpenDate)
	})

	first := days[0]
	last := days[len(days)-1]
	if len(lots) > 0 && lots[0].OpenDate.Before(first) {
		first = lots[0].OpenDate
	}
	from := first.AddDate(0, 0, -h.LookbackDays)
	needsFX := benchmark.Currency != domain.ReportingCurrency

	prices := domain.NewSnapshot()
	rates := domain.NewSnapshot()
	if len(lots) > 0 {
		if _, err := h.BenchmarkPriceService.EnsurePrices(ctx, benchmark, from, last); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("failed to refresh benchmark prices, using cached prices: %s", err.Error())
		}
		if needsFX {
			if err := h.ExchangeRateService.EnsureRates(ctx, []string{benchmark.Currency}, from, last); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				log.Warnf("failed to refresh %s rates, using cached rates: %s", benchmark.Currency, err.Error())
			}
		}

		prices, err = h.BenchmarkPriceService.BulkLoad(ctx, benchmark.Key, from, last)
		if err != nil {
			return nil, fmt.Errorf("failed to load benchmark prices: %w", err)
		}
		if needsFX {
			rates, err = h.ExchangeRateService.BulkLoad(ctx, []string{benchmark.Currency}, from, last)
			if err != nil {
				return nil, fmt.Errorf("failed to load exchange rates: %w", err)
			}
		}
	}

	shares := []lotShares{}
	for _, lot := range lots {
		cost := lot.CostBasisEUR
		if needsFX {
			rate, ok := rates.Resolve(benchmark.Currency, lot.OpenDate, h.LookbackDays)
			if !ok || rate.IsZero() {
				log.Warnf("skipping lot %s opened %s: no %s rate", lot.Symbol, lot.OpenDate.Format(time.DateOnly), benchmark.Currency)
				continue
			}
			cost = cost.Div(rate)
		}
		price, ok := prices.Resolve(benchmark.Key, lot.OpenDate, h.LookbackDays)
		if !ok || price.IsZero() {
			log.Warnf("skipping lot %s opened %s: no benchmark price", lot.Symbol, lot.OpenDate.Format(time.DateOnly))
			continue
		}
		shares = append(shares, lotShares{
			openDate: lot.OpenDate,
			shares:   cost.Div(price),
		})
	}

	out := []domain.BenchmarkPoint{}
	for _, day := range days {
		costBasis := decimal.Zero
		for _, lot := range lots {
			if !lot.OpenDate.After(day) {
				costBasis = costBasis.Add(lot.CostBasisEUR)
			}
		}
		totalShares := decimal.Zero
		for _, s := range shares {
			if !s.openDate.After(day) {
				totalShares = totalShares.Add(s.shares)
			}
		}

		point := domain.BenchmarkPoint{
			Date:           day,
			CostBasis:      costBasis.Round(2),
			BenchmarkValue: decimal.Zero,
			Complete:       true,
		}
		if totalShares.IsPositive() {
			price, ok := prices.Resolve(benchmark.Key, day, h.LookbackDays)
			rate := decimal.NewFromInt(1)
			rateOk := true
			if needsFX {
				rate, rateOk = rates.Resolve(benchmark.Currency, day, h.LookbackDays)
			}
			if ok && rateOk {
				point.BenchmarkValue = totalShares.Mul(price).Mul(rate).Round(2)
			} else {
				point.Complete = false
				log.Warnf("no benchmark price or rate for %s", day.Format(time.DateOnly))
			}
		}
		out = append(out, point)
	}

	return out, nil
}
