package l2_service

import (
	"context"
	"errors"
	"fmt"
	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	l1_service "portfoliotracker/internal/service/l1"
	"portfoliotracker/internal/util"
	"time"
)

type XIRRService interface {
	ComputeXIRR(ctx context.Context, start, end time.Time) (*domain.XIRRResult, error)
}

type xirrServiceHandler struct {
	loader               valuationLoader
	LookbackDays         int
	BoundaryLookbackDays int
	ShortPeriodDays      int
}

func NewXIRRService(
	taxLotRepository repository.TaxLotRepository,
	priceService l1_service.PriceService,
	exchangeRateService l1_service.ExchangeRateService,
	lookbackDays int,
	boundaryLookbackDays int,
	shortPeriodDays int,
) XIRRService {
	return xirrServiceHandler{
		loader: valuationLoader{
			TaxLotRepository:    taxLotRepository,
			PriceService:        priceService,
			ExchangeRateService: exchangeRateService,
			LookbackDays:        lookbackDays,
		},
		LookbackDays:         lookbackDays,
		BoundaryLookbackDays: boundaryLookbackDays,
		ShortPeriodDays:      shortPeriodDays,
	}
}

// ComputeXIRR returns the money-weighted annualised return between start and
// end. The portfolio value at start is treated as an investment, each lot
// opened in between as a further investment and the value at end as the
// payout. AnnualizedReturnPct is nil when the result is undefined.
func (h xirrServiceHandler) ComputeXIRR(ctx context.Context, start, end time.Time) (*domain.XIRRResult, error) {
	log := logger.FromContext(ctx)

	start = util.TruncateToDate(start)
	end = util.TruncateToDate(end)
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start %s must be before end %s", domain.ErrInvalidDateRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	inputs, err := h.loader.load(ctx, start.AddDate(0, 0, -h.BoundaryLookbackDays), end)
	if err != nil {
		return nil, err
	}

	// boundaries snap back to the last day any instrument was priced, so a
	// weekend or holiday end date does not read a stale valuation
	effectiveStart, ok := inputs.Prices.LatestObservedDate(start, h.BoundaryLookbackDays)
	if !ok {
		effectiveStart = start
	}
	effectiveEnd, ok := inputs.Prices.LatestObservedDate(end, h.BoundaryLookbackDays)
	if !ok {
		effectiveEnd = end
	}

	result := &domain.XIRRResult{
		EffectiveStart: effectiveStart,
		EffectiveEnd:   effectiveEnd,
	}
	if !effectiveStart.Before(effectiveEnd) {
		return result, nil
	}

	startValuation := calculator.ComputeDailyValuation(effectiveStart, inputs.Lots, inputs.Prices, inputs.Rates, h.LookbackDays)
	endValuation := calculator.ComputeDailyValuation(effectiveEnd, inputs.Lots, inputs.Prices, inputs.Rates, h.LookbackDays)
	logMissing(ctx, append(startValuation.Missing, endValuation.Missing...))

	startValue := startValuation.MarketValue.InexactFloat64()
	endValue := endValuation.MarketValue.InexactFloat64()

	flows := []domain.CashFlow{}
	if startValue > 0 {
		flows = append(flows, domain.CashFlow{Date: effectiveStart, Amount: -startValue})
	}
	invested := startValue
	for _, lot := range inputs.Lots {
		if !lot.IsOpen {
			continue
		}
		if lot.OpenDate.After(effectiveStart) && !lot.OpenDate.After(effectiveEnd) {
			cost := lot.CostBasisEUR.InexactFloat64()
			flows = append(flows, domain.CashFlow{Date: lot.OpenDate, Amount: -cost})
			invested += cost
		}
	}
	if endValue > 0 {
		flows = append(flows, domain.CashFlow{Date: effectiveEnd, Amount: endValue})
	}
	result.NumCashFlows = len(flows)

	if len(flows) < 2 || startValue <= 0 || endValue <= 0 {
		return result, nil
	}

	if util.DaysBetween(effectiveStart, effectiveEnd) < h.ShortPeriodDays {
		r, ok := calculator.SimplePeriodReturn(endValue, invested)
		if ok {
			pct := r * 100
			result.AnnualizedReturnPct = &pct
		}
		return result, nil
	}

	rate, err := calculator.XIRR(flows)
	if errors.Is(err, domain.ErrDidNotConverge) {
		log.Warnf("xirr did not converge for %s..%s with %d cash flows", effectiveStart.Format(time.DateOnly), effectiveEnd.Format(time.DateOnly), len(flows))
		return result, nil
	} else if err != nil {
		return nil, err
	}

	pct := rate * 100
	result.AnnualizedReturnPct = &pct
	return result, nil
}
