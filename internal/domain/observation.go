package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PriceObservation struct {
	SecurityID uuid.UUID
	Date       time.Time
	Price      decimal.Decimal
	Currency   string
}

type RateObservation struct {
	FromCurrency string
	ToCurrency   string
	Date         time.Time
	Rate         decimal.Decimal
}

type BenchmarkPriceObservation struct {
	BenchmarkKey string
	Date         time.Time
	Price        decimal.Decimal
	Currency     string
}
