package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TimelinePoint struct {
	Date            time.Time
	CostBasis       decimal.Decimal
	MarketValue     decimal.Decimal
	GainLoss        decimal.Decimal
	GainLossPercent decimal.Decimal
	// Complete is false when at least one lot was left out of MarketValue
	// for lack of a price or rate.
	Complete bool
}

type BenchmarkPoint struct {
	Date           time.Time
	CostBasis      decimal.Decimal
	BenchmarkValue decimal.Decimal
	// Complete is false when price or FX data was missing for the day; such
	// points are returned but never persisted.
	Complete bool
}

type BenchmarkTimeline struct {
	Benchmark Benchmark
	Points    []BenchmarkPoint
}

type XIRRResult struct {
	AnnualizedReturnPct *float64
	NumCashFlows        int
	EffectiveStart      time.Time
	EffectiveEnd        time.Time
}

type CashFlow struct {
	Date   time.Time
	Amount float64
}
