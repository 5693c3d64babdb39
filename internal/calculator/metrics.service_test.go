package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func point(day int, costBasis, marketValue int64) domain.TimelinePoint {
	return domain.TimelinePoint{
		Date:        util.NewDate(2023, 1, day),
		CostBasis:   decimal.NewFromInt(costBasis),
		MarketValue: decimal.NewFromInt(marketValue),
		Complete:    true,
	}
}

func TestCalculateMetrics(t *testing.T) {
	t.Run("contributions are not counted as returns", func(t *testing.T) {
		points := []domain.TimelinePoint{
			point(2, 1000, 1000),
			point(3, 1000, 1100),
			point(4, 2000, 2100),
			point(5, 2000, 1890),
		}
		returns, err := calculateReturns(points)
		require.NoError(t, err)
		require.Len(t, returns, 3)
		require.InDelta(t, 0.1, returns[0], 1e-9)
		require.InDelta(t, 0.0, returns[1], 1e-9)
		require.InDelta(t, -0.1, returns[2], 1e-9)

		result, err := CalculateMetrics(points)
		require.NoError(t, err)
		require.Equal(t, 3, result.NumReturns)
		require.InDelta(t, 0.1, result.MaxDrawdown, 1e-9)
		require.Greater(t, result.AnnualizedStdev, 0.0)
	})

	t.Run("days without market value are skipped", func(t *testing.T) {
		points := []domain.TimelinePoint{
			point(2, 0, 0),
			point(3, 1000, 1000),
			point(4, 1000, 1010),
			point(5, 1000, 1020),
		}
		returns, err := calculateReturns(points)
		require.NoError(t, err)
		require.Len(t, returns, 2)
	})

	t.Run("days with excluded lots are bridged", func(t *testing.T) {
		points := []domain.TimelinePoint{
			point(2, 1000, 1000),
			point(3, 1000, 1010),
			point(4, 1000, 0),
			point(5, 1000, 500),
			point(6, 1000, 1020),
			point(9, 1000, 1030),
			point(10, 1000, 1040),
		}
		// day 4 had every lot excluded, day 5 only some of them
		points[2].Complete = false
		points[3].Complete = false

		returns, err := calculateReturns(points)
		require.NoError(t, err)
		require.Len(t, returns, 4)
		require.InDelta(t, 10.0/1010, returns[1], 1e-9)

		result, err := CalculateMetrics(points)
		require.NoError(t, err)
		require.Greater(t, result.AnnualizedReturn, 0.0)
		require.InDelta(t, 0.0, result.MaxDrawdown, 1e-9)
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := CalculateMetrics([]domain.TimelinePoint{point(2, 1000, 1000)})
		require.ErrorIs(t, err, ErrInsufficientData)
	})
}
