package l1_service

import (
	"context"
	"errors"
	"fmt"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/util"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateService keeps the exchange_rate cache filled. Rates are
// currency -> EUR, so amount * rate is the EUR amount.
type ExchangeRateService interface {
	EnsureRates(ctx context.Context, currencies []string, start, end time.Time) error
	ConvertToEUR(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (decimal.Decimal, error)
	BulkLoad(ctx context.Context, currencies []string, start, end time.Time) (domain.Snapshot, error)
}

type exchangeRateServiceHandler struct {
	ExchangeRateRepository repository.ExchangeRateRepository
	FrankfurterRepository  repository.FrankfurterRepository
	LookbackDays           int
	EmptyFetches           *emptyFetchCache
}

func NewExchangeRateService(
	exchangeRateRepository repository.ExchangeRateRepository,
	frankfurterRepository repository.FrankfurterRepository,
	lookbackDays int,
) ExchangeRateService {
	return exchangeRateServiceHandler{
		ExchangeRateRepository: exchangeRateRepository,
		FrankfurterRepository:  frankfurterRepository,
		LookbackDays:           lookbackDays,
		EmptyFetches:           newEmptyFetchCache(emptyFetchTTL, nil),
	}
}

func (h exchangeRateServiceHandler) BulkLoad(ctx context.Context, currencies []string, start, end time.Time) (domain.Snapshot, error) {
	return h.ExchangeRateRepository.BulkLoad(ctx, foreignCurrencies(currencies), start, end)
}

// EnsureRates fetches missing rates for every non-EUR currency with one
// request per currency. Failures for one currency do not stop the others;
// they are joined into the returned error.
func (h exchangeRateServiceHandler) EnsureRates(ctx context.Context, currencies []string, start, end time.Time) error {
	errs := []error{}
	for _, currency := range foreignCurrencies(currencies) {
		if err := h.ensureRate(ctx, currency, start, end); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h exchangeRateServiceHandler) ensureRate(ctx context.Context, currency string, start, end time.Time) error {
	dates, err := h.ExchangeRateRepository.ListDates(ctx, currency, start, end)
	if err != nil {
		return err
	}
	from, to, ok := h.EmptyFetches.missingRange(currency, dates, start, end)
	if !ok {
		return nil
	}

	observations, err := h.FrankfurterRepository.GetRates(ctx, currency, from, to)
	if err != nil {
		return err
	}

	models := []model.ExchangeRate{}
	observed := []time.Time{}
	for _, o := range observations {
		observed = append(observed, o.Date)
		models = append(models, model.ExchangeRate{
			FromCurrency: o.FromCurrency,
			ToCurrency:   o.ToCurrency,
			Date:         o.Date,
			Rate:         o.Rate,
		})
	}
	err = h.ExchangeRateRepository.Add(ctx, nil, models)
	if err != nil {
		return err
	}
	h.EmptyFetches.record(currency, from, to, observed)

	logger.FromContext(ctx).Debugf("stored %d %s rates for %s..%s", len(models), currency, from.Format(time.DateOnly), to.Format(time.DateOnly))
	return nil
}

// ConvertToEUR converts amount using the rate on date, forward-filled over the
// lookback window. A cache miss triggers a fetch.
func (h exchangeRateServiceHandler) ConvertToEUR(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (decimal.Decimal, error) {
	currency = strings.ToUpper(currency)
	if currency == domain.ReportingCurrency {
		return amount, nil
	}

	date = util.TruncateToDate(date)
	from := date.AddDate(0, 0, -h.LookbackDays)

	rate, ok, err := h.resolve(ctx, currency, from, date)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		err = h.ensureRate(ctx, currency, from, date)
		if err != nil {
			return decimal.Zero, err
		}
		rate, ok, err = h.resolve(ctx, currency, from, date)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			return decimal.Zero, domain.MissingDataError{
				Kind: "exchange rate",
				Key:  currency,
				Date: date,
			}
		}
	}

	return amount.Mul(rate), nil
}

func (h exchangeRateServiceHandler) resolve(ctx context.Context, currency string, from, date time.Time) (decimal.Decimal, bool, error) {
	snapshot, err := h.ExchangeRateRepository.BulkLoad(ctx, []string{currency}, from, date)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to load %s rates: %w", currency, err)
	}
	rate, ok := snapshot.Resolve(currency, date, h.LookbackDays)
	return rate, ok, nil
}

// foreignCurrencies dedupes and uppercases, dropping EUR.
func foreignCurrencies(currencies []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range currencies {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || c == domain.ReportingCurrency || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
