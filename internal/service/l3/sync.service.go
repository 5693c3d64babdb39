package l3_service

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	l1_service "portfoliotracker/internal/service/l1"
	"portfoliotracker/internal/util"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SyncLotsResult struct {
	Securities  int
	LotsAdded   int
	LotsSkipped int
	LotsDeleted int64
}

type SyncResult struct {
	Items       int
	PricesAdded int
	Failed      []string
}

type AnalystRatingSyncResult struct {
	Securities int
	Updated    int
	NoCoverage int
	Failed     []string
}

// SyncService pulls lots, prices, benchmark prices and exchange rates from
// their upstream sources into the database.
type SyncService interface {
	SyncLots(ctx context.Context) (*SyncLotsResult, error)
	SyncMarketData(ctx context.Context, daysBack int) (*SyncResult, error)
	SyncBenchmarks(ctx context.Context, daysBack int) (*SyncResult, error)
	SyncFX(ctx context.Context, daysBack int) error
	SyncAnalystRatings(ctx context.Context, staleOnly bool) (*AnalystRatingSyncResult, error)
	AnalystRatingStatus(ctx context.Context) (*domain.AnalystRatingStatus, error)
}

// Delay pauses between upstream calls. It returns early with ctx.Err() when
// the context is cancelled.
type Delay func(ctx context.Context) error

func RandomDelay(minDelay, maxDelay time.Duration) Delay {
	return func(ctx context.Context) error {
		d := minDelay
		if maxDelay > minDelay {
			d += time.Duration(rand.Int63n(int64(maxDelay - minDelay)))
		}
		if d <= 0 {
			return ctx.Err()
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

type syncServiceHandler struct {
	Db                               *sql.DB
	LotSourceRepository              repository.LotSourceRepository
	SecurityRepository               repository.SecurityRepository
	TaxLotRepository                 repository.TaxLotRepository
	BenchmarkTimelineCacheRepository repository.BenchmarkTimelineCacheRepository
	PriceService                     l1_service.PriceService
	BenchmarkPriceService            l1_service.BenchmarkPriceService
	ExchangeRateService              l1_service.ExchangeRateService
	AnalystRatingService             l1_service.AnalystRatingService
	FetchDelay                       Delay
	BenchmarkDelay                   Delay
	RatingStaleAfter                 time.Duration
	today                            func() time.Time
	now                              func() time.Time
}

func NewSyncService(
	db *sql.DB,
	lotSourceRepository repository.LotSourceRepository,
	securityRepository repository.SecurityRepository,
	taxLotRepository repository.TaxLotRepository,
	benchmarkTimelineCacheRepository repository.BenchmarkTimelineCacheRepository,
	priceService l1_service.PriceService,
	benchmarkPriceService l1_service.BenchmarkPriceService,
	exchangeRateService l1_service.ExchangeRateService,
	analystRatingService l1_service.AnalystRatingService,
	fetchDelay Delay,
	benchmarkDelay Delay,
	ratingStaleAfter time.Duration,
) SyncService {
	return syncServiceHandler{
		Db:                               db,
		LotSourceRepository:              lotSourceRepository,
		SecurityRepository:               securityRepository,
		TaxLotRepository:                 taxLotRepository,
		BenchmarkTimelineCacheRepository: benchmarkTimelineCacheRepository,
		PriceService:                     priceService,
		BenchmarkPriceService:            benchmarkPriceService,
		ExchangeRateService:              exchangeRateService,
		AnalystRatingService:             analystRatingService,
		FetchDelay:                       fetchDelay,
		BenchmarkDelay:                   benchmarkDelay,
		RatingStaleAfter:                 ratingStaleAfter,
		today:                            util.Today,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type securityKey struct {
	symbol   string
	exchange string
}

type preparedSecurity struct {
	security model.Security
	lots     []model.TaxLot
}

// SyncLots replaces the stored lots with the lot source's current export. The
// EUR cost basis of each lot is fixed here using the rate on its open date.
func (h syncServiceHandler) SyncLots(ctx context.Context) (*SyncLotsResult, error) {
	rawLots, err := h.LotSourceRepository.FetchLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lots: %w", err)
	}

	// conversions may fetch rates, so they happen before the transaction
	prepared, skipped, err := h.prepareLots(ctx, rawLots)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := h.importLots(ctx, tx, prepared)
	if err != nil {
		return nil, err
	}
	result.LotsSkipped = skipped

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit lot sync: %w", err)
	}

	logger.FromContext(ctx).Infof(
		"synced %d lots across %d securities (%d skipped, %d removed)",
		result.LotsAdded, result.Securities, result.LotsSkipped, result.LotsDeleted,
	)

	return result, nil
}

func (h syncServiceHandler) prepareLots(ctx context.Context, rawLots []domain.RawLot) ([]preparedSecurity, int, error) {
	log := logger.FromContext(ctx)

	bySecurity := map[securityKey]*preparedSecurity{}
	order := []securityKey{}
	skipped := 0
	for _, raw := range rawLots {
		currency := strings.ToUpper(raw.Currency)
		costBasisEUR, err := h.ExchangeRateService.ConvertToEUR(ctx, raw.CostBasis, currency, raw.OpenDate)
		if domain.IsUnsupportedCurrency(err) {
			log.Warnf("skipping lot %s opened %s: %s", raw.Symbol, raw.OpenDate.Format(time.DateOnly), err.Error())
			skipped++
			continue
		} else if err != nil {
			return nil, 0, fmt.Errorf("failed to convert cost basis of %s: %w", raw.Symbol, err)
		}

		key := securityKey{symbol: raw.Symbol, exchange: raw.Exchange}
		ps, ok := bySecurity[key]
		if !ok {
			ps = &preparedSecurity{
				security: model.Security{
					Symbol:   raw.Symbol,
					Exchange: raw.Exchange,
					Conid:    raw.Conid,
					Name:     raw.Name,
					Currency: currency,
					Isin:     raw.Isin,
				},
				lots: []model.TaxLot{},
			}
			bySecurity[key] = ps
			order = append(order, key)
		}
		ps.lots = append(ps.lots, model.TaxLot{
			OpenDate:     util.TruncateToDate(raw.OpenDate),
			Quantity:     raw.Quantity,
			CostBasis:    raw.CostBasis,
			CostBasisEur: costBasisEUR.Round(2),
			Currency:     currency,
			IsOpen:       raw.IsOpen,
		})
	}

	out := []preparedSecurity{}
	for _, k := range order {
		out = append(out, *bySecurity[k])
	}
	return out, skipped, nil
}

func (h syncServiceHandler) importLots(ctx context.Context, tx *sql.Tx, prepared []preparedSecurity) (*SyncLotsResult, error) {
	result := &SyncLotsResult{}
	keep := []uuid.UUID{}
	for _, ps := range prepared {
		security, err := h.SecurityRepository.Upsert(ctx, tx, ps.security)
		if err != nil {
			return nil, err
		}
		err = h.TaxLotRepository.ReplaceForSecurity(ctx, tx, security.SecurityID, ps.lots)
		if err != nil {
			return nil, err
		}
		keep = append(keep, security.SecurityID)
		result.Securities++
		result.LotsAdded += len(ps.lots)
	}

	deleted, err := h.TaxLotRepository.DeleteExceptSecurities(ctx, tx, keep)
	if err != nil {
		return nil, err
	}
	result.LotsDeleted = deleted

	// the simulation replays lot history, so every cached point is now stale
	err = h.BenchmarkTimelineCacheRepository.DeleteAll(ctx, tx)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SyncMarketData fills missing prices for every security with open lots. A
// failure for one security is logged and counted; the run continues.
func (h syncServiceHandler) SyncMarketData(ctx context.Context, daysBack int) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	securities, err := h.SecurityRepository.ListWithOpenLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	sort.Slice(securities, func(i, j int) bool {
		return securities[i].Symbol < securities[j].Symbol
	})

	end := h.today()
	start := end.AddDate(0, 0, -daysBack)
	result := &SyncResult{Failed: []string{}}

	for i, security := range securities {
		if i > 0 && h.FetchDelay != nil {
			if err := h.FetchDelay(ctx); err != nil {
				return result, err
			}
		}
		added, err := h.PriceService.EnsurePrices(ctx, security, start, end)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.Warnf("failed to sync prices for %s: %s", security.Symbol, err.Error())
			result.Failed = append(result.Failed, security.Symbol)
			continue
		}
		result.Items++
		result.PricesAdded += added
	}

	log.Infof("market data sync: %d securities, %d prices added, %d failed", result.Items, result.PricesAdded, len(result.Failed))
	return result, nil
}

func (h syncServiceHandler) SyncBenchmarks(ctx context.Context, daysBack int) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	end := h.today()
	start := end.AddDate(0, 0, -daysBack)
	result := &SyncResult{Failed: []string{}}

	for i, benchmark := range domain.ListBenchmarks() {
		if i > 0 && h.BenchmarkDelay != nil {
			if err := h.BenchmarkDelay(ctx); err != nil {
				return result, err
			}
		}
		added, err := h.BenchmarkPriceService.EnsurePrices(ctx, benchmark, start, end)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.Warnf("failed to sync benchmark %s: %s", benchmark.Key, err.Error())
			result.Failed = append(result.Failed, benchmark.Key)
			continue
		}
		result.Items++
		result.PricesAdded += added
	}

	log.Infof("benchmark sync: %d benchmarks, %d prices added, %d failed", result.Items, result.PricesAdded, len(result.Failed))
	return result, nil
}

// SyncFX ensures rates for every currency held, plus the benchmark currencies.
func (h syncServiceHandler) SyncFX(ctx context.Context, daysBack int) error {
	securities, err := h.SecurityRepository.ListWithOpenLots(ctx)
	if err != nil {
		return fmt.Errorf("failed to list securities: %w", err)
	}
	currencies := []string{}
	for _, s := range securities {
		currencies = append(currencies, s.Currency)
	}
	for _, b := range domain.ListBenchmarks() {
		currencies = append(currencies, b.Currency)
	}

	end := h.today()
	return h.ExchangeRateService.EnsureRates(ctx, currencies, end.AddDate(0, 0, -daysBack), end)
}

// SyncAnalystRatings refreshes the analyst consensus of every known security,
// or with staleOnly just the ones never rated or older than RatingStaleAfter.
// Requests are spaced by FetchDelay like price fetches.
func (h syncServiceHandler) SyncAnalystRatings(ctx context.Context, staleOnly bool) (*AnalystRatingSyncResult, error) {
	log := logger.FromContext(ctx)

	models, err := h.SecurityRepository.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	securities := []domain.Security{}
	for _, m := range models {
		securities = append(securities, repository.SecurityFromModel(m))
	}
	if staleOnly {
		securities, err = h.AnalystRatingService.ListStale(ctx, securities, h.now().Add(-h.RatingStaleAfter))
		if err != nil {
			return nil, fmt.Errorf("failed to list stale ratings: %w", err)
		}
	}

	result := &AnalystRatingSyncResult{
		Securities: len(securities),
		Failed:     []string{},
	}
	for i, security := range securities {
		if i > 0 && h.FetchDelay != nil {
			if err := h.FetchDelay(ctx); err != nil {
				return result, err
			}
		}
		rating, err := h.AnalystRatingService.Refresh(ctx, security)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.Warnf("failed to sync analyst rating for %s: %s", security.Symbol, err.Error())
			result.Failed = append(result.Failed, security.Symbol)
			continue
		}
		if rating == nil {
			result.NoCoverage++
			continue
		}
		result.Updated++
	}

	log.Infof("analyst rating sync: %d securities, %d updated, %d without coverage, %d failed", result.Securities, result.Updated, result.NoCoverage, len(result.Failed))
	return result, nil
}

func (h syncServiceHandler) AnalystRatingStatus(ctx context.Context) (*domain.AnalystRatingStatus, error) {
	return h.AnalystRatingService.Status(ctx, h.now().Add(-h.RatingStaleAfter))
}
