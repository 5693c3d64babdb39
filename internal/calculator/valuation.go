package calculator

import (
	"portfoliotracker/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type DailyValuation struct {
	Date            time.Time
	CostBasis       decimal.Decimal
	MarketValue     decimal.Decimal
	GainLoss        decimal.Decimal
	GainLossPercent decimal.Decimal
	// Missing lists lots whose market value was excluded because a price or
	// FX rate could not be resolved.
	Missing []domain.MissingDataError
}

func (v DailyValuation) TimelinePoint() domain.TimelinePoint {
	return domain.TimelinePoint{
		Date:            v.Date,
		CostBasis:       v.CostBasis,
		MarketValue:     v.MarketValue,
		GainLoss:        v.GainLoss,
		GainLossPercent: v.GainLossPercent,
		Complete:        len(v.Missing) == 0,
	}
}

// ComputeDailyValuation values the lots held on date using only the given
// snapshots. Prices are keyed by security id and rates by source currency
// (amount in currency * rate = amount in EUR).
func ComputeDailyValuation(
	date time.Time,
	lots []domain.Lot,
	prices domain.Snapshot,
	rates domain.Snapshot,
	lookbackDays int,
) DailyValuation {
	out := DailyValuation{
		Date:        date,
		CostBasis:   decimal.Zero,
		MarketValue: decimal.Zero,
		Missing:     []domain.MissingDataError{},
	}

	for _, lot := range lots {
		if !lot.IsOpen || lot.OpenDate.After(date) {
			continue
		}
		out.CostBasis = out.CostBasis.Add(lot.CostBasisEUR)

		value, err := LotMarketValue(lot, date, prices, rates, lookbackDays)
		if err != nil {
			out.Missing = append(out.Missing, *err)
			continue
		}
		out.MarketValue = out.MarketValue.Add(value)
	}

	out.GainLoss = out.MarketValue.Sub(out.CostBasis)
	out.GainLossPercent = GainLossPercent(out.GainLoss, out.CostBasis)

	return out
}

// LotMarketValue returns quantity * price converted to EUR, or the missing
// observation that prevented the valuation.
func LotMarketValue(
	lot domain.Lot,
	date time.Time,
	prices domain.Snapshot,
	rates domain.Snapshot,
	lookbackDays int,
) (decimal.Decimal, *domain.MissingDataError) {
	key := lot.SecurityID.String()
	price, ok := prices.Resolve(key, date, lookbackDays)
	if !ok {
		return decimal.Zero, &domain.MissingDataError{
			Kind: "price",
			Key:  lot.Symbol,
			Date: date,
		}
	}

	value := lot.Quantity.Mul(price)
	if lot.Currency == domain.ReportingCurrency {
		return value, nil
	}

	rate, ok := rates.Resolve(lot.Currency, date, lookbackDays)
	if !ok {
		return decimal.Zero, &domain.MissingDataError{
			Kind: "exchange rate",
			Key:  lot.Currency,
			Date: date,
		}
	}

	return value.Mul(rate), nil
}

func GainLossPercent(gainLoss, costBasis decimal.Decimal) decimal.Decimal {
	if !costBasis.IsPositive() {
		return decimal.Zero
	}
	return gainLoss.Div(costBasis).Mul(hundred)
}
