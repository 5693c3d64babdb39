package calculator

import (
	"errors"
	"fmt"
	"math"
	"portfoliotracker/internal/domain"
	"sort"

	"github.com/montanaflynn/stats"
)

var ErrInsufficientData = errors.New("not enough data")

type CalculateMetricsResult struct {
	AnnualizedStdev  float64
	AnnualizedReturn float64
	SharpeRatio      float64
	MaxDrawdown      float64
	NumReturns       int
}

// CalculateMetrics computes risk metrics from a valuation timeline. Daily
// returns strip out the effect of new lots so a purchase does not show up as
// a gain.
func CalculateMetrics(points []domain.TimelinePoint) (*CalculateMetricsResult, error) {
	returns, err := calculateReturns(points)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate returns: %w", err)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	annualizedStdev := stdev * math.Sqrt(252)

	growth := 1.0
	peak := 1.0
	maxDrawdown := 0.0
	for _, r := range returns {
		growth *= 1 + r
		peak = math.Max(peak, growth)
		drawdown := (peak - growth) / peak
		maxDrawdown = math.Max(maxDrawdown, drawdown)
	}

	numYears := float64(len(returns)) / 252
	annualizedReturn := math.Pow(growth, 1/numYears) - 1

	sharpeRatio := 0.0
	if annualizedStdev > 0 {
		sharpeRatio = annualizedReturn / annualizedStdev
	}

	return &CalculateMetricsResult{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		SharpeRatio:      sharpeRatio,
		MaxDrawdown:      maxDrawdown,
		NumReturns:       len(returns),
	}, nil
}

func calculateReturns(points []domain.TimelinePoint) ([]float64, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("cannot calculate metrics on %d timeline points: %w", len(points), ErrInsufficientData)
	}
	sorted := make([]domain.TimelinePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	// days with excluded lots would show up as phantom losses, so each
	// return is measured against the last fully valued day
	returns := []float64{}
	var prev *domain.TimelinePoint
	for i := range sorted {
		curr := sorted[i]
		if !curr.Complete || !curr.MarketValue.IsPositive() {
			continue
		}
		if prev != nil {
			contributed := curr.CostBasis.Sub(prev.CostBasis)
			change := curr.MarketValue.Sub(prev.MarketValue).Sub(contributed)
			returns = append(returns, change.Div(prev.MarketValue).InexactFloat64())
		}
		prev = &sorted[i]
	}

	if len(returns) < 2 {
		return nil, fmt.Errorf("only %d valued days: %w", len(returns)+1, ErrInsufficientData)
	}

	return returns, nil
}
