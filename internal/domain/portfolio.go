package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position aggregates every open lot of one security.
type Position struct {
	Security        Security
	Quantity        decimal.Decimal
	CostBasis       decimal.Decimal
	MarketValue     decimal.Decimal
	GainLoss        decimal.Decimal
	GainLossPercent decimal.Decimal
	// nil when no price was found within the lookback window
	LatestPrice     *decimal.Decimal
	LatestPriceDate *time.Time
	Lots            []Lot
	AnalystRating   *AnalystRating
}

type Portfolio struct {
	Positions map[uuid.UUID]*Position
}

func NewPortfolio() *Portfolio {
	return &Portfolio{
		Positions: map[uuid.UUID]*Position{},
	}
}

func (p *Portfolio) AddLot(security Security, lot Lot) {
	position, ok := p.Positions[security.SecurityID]
	if !ok {
		position = &Position{
			Security: security,
			Lots:     []Lot{},
		}
		p.Positions[security.SecurityID] = position
	}
	position.Quantity = position.Quantity.Add(lot.Quantity)
	position.CostBasis = position.CostBasis.Add(lot.CostBasisEUR)
	position.Lots = append(position.Lots, lot)
}

// SortedPositions orders positions by market value, largest first.
func (p Portfolio) SortedPositions() []Position {
	out := []Position{}
	for _, position := range p.Positions {
		out = append(out, *position)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MarketValue.Equal(out[j].MarketValue) {
			return out[i].Security.Symbol < out[j].Security.Symbol
		}
		return out[i].MarketValue.GreaterThan(out[j].MarketValue)
	})
	return out
}

type Summary struct {
	Date            time.Time
	CostBasis       decimal.Decimal
	MarketValue     decimal.Decimal
	GainLoss        decimal.Decimal
	GainLossPercent decimal.Decimal
	NumPositions    int
}

type AnalystRating struct {
	StrongBuy   int32
	Buy         int32
	Hold        int32
	Sell        int32
	StrongSell  int32
	LastUpdated time.Time
}

type AnalystRatingStatus struct {
	Total        int
	Stale        int
	OldestUpdate *time.Time
	NewestUpdate *time.Time
}

func (r AnalystRating) Total() int32 {
	return r.StrongBuy + r.Buy + r.Hold + r.Sell + r.StrongSell
}

// Consensus maps the weighted score (1 strong buy .. 5 strong sell) to a label.
func (r AnalystRating) Consensus() string {
	total := r.Total()
	if total == 0 {
		return "No Rating"
	}
	score := float64(r.StrongBuy*1+r.Buy*2+r.Hold*3+r.Sell*4+r.StrongSell*5) / float64(total)
	switch {
	case score <= 1.5:
		return "Strong Buy"
	case score <= 2.5:
		return "Buy"
	case score <= 3.5:
		return "Hold"
	case score <= 4.5:
		return "Sell"
	default:
		return "Strong Sell"
	}
}
