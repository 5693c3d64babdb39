package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency every cost basis and market value is
// normalised to.
const ReportingCurrency = "EUR"

type Security struct {
	SecurityID uuid.UUID
	Symbol     string
	Exchange   string
	Conid      *int64
	Name       string
	Currency   string
	Isin       *string
}

// Lot is a dated purchase of a security. CostBasisEUR is fixed when the lot is
// created and never recomputed.
type Lot struct {
	TaxLotID     uuid.UUID
	SecurityID   uuid.UUID
	Symbol       string
	OpenDate     time.Time
	Quantity     decimal.Decimal
	CostBasis    decimal.Decimal
	CostBasisEUR decimal.Decimal
	Currency     string
	IsOpen       bool
}

// RawLot is a lot as it arrives from the brokerage export, before its cost
// basis is converted to the reporting currency.
type RawLot struct {
	Symbol    string
	Exchange  string
	Conid     *int64
	Name      string
	Isin      *string
	Currency  string
	OpenDate  time.Time
	Quantity  decimal.Decimal
	CostBasis decimal.Decimal
	IsOpen    bool
}
