package l1_service

import (
	"context"
	"errors"
	"fmt"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"time"

	"github.com/google/uuid"
)

/**

prices are only ever read from the market_price cache during a valuation.
EnsurePrices fills the cache for one security; the sync job calls it on a
schedule so that timeline requests never hit yahoo.

*/

type PriceService interface {
	EnsurePrices(ctx context.Context, security domain.Security, start, end time.Time) (int, error)
	BulkLoad(ctx context.Context, securityIDs []uuid.UUID, start, end time.Time) (domain.Snapshot, error)
}

type priceServiceHandler struct {
	MarketPriceRepository   repository.MarketPriceRepository
	TickerMappingRepository repository.TickerMappingRepository
	YahooRepository         repository.YahooRepository
	// nil when no alpaca credentials are configured
	AlpacaRepository repository.AlpacaRepository
	EmptyFetches     *emptyFetchCache
}

func NewPriceService(
	marketPriceRepository repository.MarketPriceRepository,
	tickerMappingRepository repository.TickerMappingRepository,
	yahooRepository repository.YahooRepository,
	alpacaRepository repository.AlpacaRepository,
) PriceService {
	return priceServiceHandler{
		MarketPriceRepository:   marketPriceRepository,
		TickerMappingRepository: tickerMappingRepository,
		YahooRepository:         yahooRepository,
		AlpacaRepository:        alpacaRepository,
		EmptyFetches:            newEmptyFetchCache(emptyFetchTTL, nil),
	}
}

func (h priceServiceHandler) BulkLoad(ctx context.Context, securityIDs []uuid.UUID, start, end time.Time) (domain.Snapshot, error) {
	return h.MarketPriceRepository.BulkLoad(ctx, securityIDs, start, end)
}

// EnsurePrices fetches the business days in [start, end] that are not cached
// yet and stores them. It returns the number of prices fetched. Days after
// the last settled date are left for a later call.
func (h priceServiceHandler) EnsurePrices(ctx context.Context, security domain.Security, start, end time.Time) (int, error) {
	dates, err := h.MarketPriceRepository.ListDates(ctx, security.SecurityID, start, end)
	if err != nil {
		return 0, err
	}
	key := security.SecurityID.String()
	from, to, ok := h.EmptyFetches.missingRange(key, dates, start, end)
	if !ok {
		return 0, nil
	}

	bars, err := h.fetchBars(ctx, security, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch prices for %s: %w", security.Symbol, err)
	}
	barDates := []time.Time{}
	for _, bar := range bars {
		barDates = append(barDates, bar.Date)
	}
	h.EmptyFetches.record(key, from, to, barDates)
	if len(bars) == 0 {
		logger.FromContext(ctx).Warnf("no prices returned for %s between %s and %s", security.Symbol, from.Format(time.DateOnly), to.Format(time.DateOnly))
		return 0, nil
	}

	models := []model.MarketPrice{}
	for _, bar := range bars {
		models = append(models, model.MarketPrice{
			SecurityID: security.SecurityID,
			Date:       bar.Date,
			Price:      bar.Close,
			Currency:   security.Currency,
		})
	}
	err = h.MarketPriceRepository.Add(ctx, nil, models)
	if err != nil {
		return 0, err
	}

	return len(models), nil
}

func (h priceServiceHandler) fetchBars(ctx context.Context, security domain.Security, start, end time.Time) ([]repository.PriceBar, error) {
	log := logger.FromContext(ctx)

	mapping, err := h.TickerMappingRepository.Get(ctx, security.Symbol, security.Exchange)
	if err != nil {
		return nil, err
	}
	if mapping != nil {
		return h.YahooRepository.GetDailyCloses(ctx, mapping.YahooTicker, start, end)
	}

	var lastErr error
	for i, ticker := range YahooTickerCandidates(security.Symbol, security.Exchange) {
		bars, err := h.YahooRepository.GetDailyCloses(ctx, ticker, start, end)
		if err != nil {
			var upstream domain.UpstreamFetchError
			if errors.As(err, &upstream) && upstream.RateLimited {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		if len(bars) == 0 {
			continue
		}
		if i > 0 {
			err = h.TickerMappingRepository.Add(ctx, model.TickerMapping{
				BrokerSymbol:   security.Symbol,
				BrokerExchange: security.Exchange,
				YahooTicker:    ticker,
				Source:         repository.TickerMappingSourceAuto,
				IsActive:       true,
			})
			if err != nil {
				log.Warnf("failed to save ticker mapping %s -> %s: %s", security.Symbol, ticker, err.Error())
			} else {
				log.Infof("resolved %s on %s to %s", security.Symbol, security.Exchange, ticker)
			}
		}
		return bars, nil
	}

	if h.AlpacaRepository != nil && IsUSExchange(security.Exchange) {
		bars, err := h.AlpacaRepository.GetDailyCloses(ctx, security.Symbol, start, end)
		if err != nil {
			lastErr = err
		} else if len(bars) > 0 {
			return bars, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return []repository.PriceBar{}, nil
}
