package l2_service

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	l1_service "portfoliotracker/internal/service/l1"
	"time"

	"github.com/google/uuid"
)

// valuationInputs is everything a valuation over a date range needs, loaded
// up front so the per-day loop never touches the database.
type valuationInputs struct {
	Lots   []domain.Lot
	Prices domain.Snapshot
	Rates  domain.Snapshot
}

type valuationLoader struct {
	TaxLotRepository    repository.TaxLotRepository
	PriceService        l1_service.PriceService
	ExchangeRateService l1_service.ExchangeRateService
	LookbackDays        int
}

// load reads open lots and bulk loads prices and rates for
// [start - lookback, end]. Missing FX rates are fetched first; a failed fetch
// is logged and the valuation continues on whatever is cached.
func (l valuationLoader) load(ctx context.Context, start, end time.Time) (*valuationInputs, error) {
	log := logger.FromContext(ctx)
	profile := domain.ProfileFromContext(ctx)

	_, endSpan := profile.StartNewSpan("list open lots")
	lots, err := l.TaxLotRepository.ListOpen(ctx)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to list open lots: %w", err)
	}

	securityIDs := []uuid.UUID{}
	currencies := []string{}
	seenSecurities := map[uuid.UUID]bool{}
	seenCurrencies := map[string]bool{}
	for _, lot := range lots {
		if !seenSecurities[lot.SecurityID] {
			seenSecurities[lot.SecurityID] = true
			securityIDs = append(securityIDs, lot.SecurityID)
		}
		if lot.Currency != domain.ReportingCurrency && !seenCurrencies[lot.Currency] {
			seenCurrencies[lot.Currency] = true
			currencies = append(currencies, lot.Currency)
		}
	}

	from := start.AddDate(0, 0, -l.LookbackDays)

	_, endSpan = profile.StartNewSpan("ensure exchange rates")
	if len(currencies) > 0 {
		if err := l.ExchangeRateService.EnsureRates(ctx, currencies, from, end); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("failed to refresh exchange rates, using cached rates: %s", err.Error())
		}
	}

	endSpan()

	_, endSpan = profile.StartNewSpan("bulk load prices and rates")
	defer endSpan()
	prices := domain.NewSnapshot()
	if len(securityIDs) > 0 {
		prices, err = l.PriceService.BulkLoad(ctx, securityIDs, from, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load prices: %w", err)
		}
	}

	rates := domain.NewSnapshot()
	if len(currencies) > 0 {
		rates, err = l.ExchangeRateService.BulkLoad(ctx, currencies, from, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load exchange rates: %w", err)
		}
	}

	return &valuationInputs{
		Lots:   lots,
		Prices: prices,
		Rates:  rates,
	}, nil
}

type missingSummary struct {
	first time.Time
	last  time.Time
	count int
}

// logMissing reports exclusions once per key instead of once per day.
func logMissing(ctx context.Context, missing []domain.MissingDataError) {
	if len(missing) == 0 {
		return
	}
	byKey := map[string]*missingSummary{}
	order := []string{}
	for _, m := range missing {
		k := m.Kind + " " + m.Key
		s, ok := byKey[k]
		if !ok {
			s = &missingSummary{first: m.Date, last: m.Date}
			byKey[k] = s
			order = append(order, k)
		}
		if m.Date.Before(s.first) {
			s.first = m.Date
		}
		if m.Date.After(s.last) {
			s.last = m.Date
		}
		s.count++
	}

	log := logger.FromContext(ctx)
	for _, k := range order {
		s := byKey[k]
		log.Warnf("no %s within lookback on %d days (%s..%s), excluded from market value",
			k, s.count, s.first.Format(time.DateOnly), s.last.Format(time.DateOnly))
	}
}
