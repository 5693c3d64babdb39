package calculator

import (
	"math"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXIRR(t *testing.T) {
	t.Run("doubling over one year", func(t *testing.T) {
		rate, err := XIRR([]domain.CashFlow{
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
			{Date: util.NewDate(2024, 1, 1), Amount: 2000},
		})
		require.NoError(t, err)
		require.InDelta(t, 1.0, rate, 1e-6)
	})

	t.Run("loss", func(t *testing.T) {
		rate, err := XIRR([]domain.CashFlow{
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
			{Date: util.NewDate(2024, 1, 1), Amount: 800},
		})
		require.NoError(t, err)
		require.InDelta(t, -0.2, rate, 1e-6)
	})

	t.Run("multiple contributions", func(t *testing.T) {
		flows := []domain.CashFlow{
			{Date: util.NewDate(2022, 1, 3), Amount: -1000},
			{Date: util.NewDate(2022, 7, 1), Amount: -500},
			{Date: util.NewDate(2023, 1, 2), Amount: 1700},
		}
		rate, err := XIRR(flows)
		require.NoError(t, err)

		npv := 0.0
		for _, cf := range flows {
			years := cf.Date.Sub(flows[0].Date).Hours() / 24 / 365
			npv += cf.Amount / math.Pow(1+rate, years)
		}
		require.InDelta(t, 0, npv, 1e-4)
		require.Greater(t, rate, 0.0)
	})

	t.Run("order of flows does not matter", func(t *testing.T) {
		rate, err := XIRR([]domain.CashFlow{
			{Date: util.NewDate(2024, 1, 1), Amount: 2000},
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
		})
		require.NoError(t, err)
		require.InDelta(t, 1.0, rate, 1e-6)
	})

	t.Run("no sign change", func(t *testing.T) {
		_, err := XIRR([]domain.CashFlow{
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
			{Date: util.NewDate(2024, 1, 1), Amount: -100},
		})
		require.ErrorIs(t, err, domain.ErrDidNotConverge)
	})

	t.Run("single flow", func(t *testing.T) {
		_, err := XIRR([]domain.CashFlow{
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
		})
		require.ErrorIs(t, err, domain.ErrDidNotConverge)
	})
}

func TestBisect(t *testing.T) {
	root, err := bisect(func(x float64) float64 {
		return x*x - 2
	}, 0, 2)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, root, 1e-6)

	// a 100% return, well outside where newton starts
	f := func(r float64) float64 {
		return 1/(1+r) - 0.5
	}
	lo, hi, ok := bracket(f)
	require.True(t, ok)
	root, err = bisect(f, lo, hi)
	require.NoError(t, err)
	require.InDelta(t, 1.0, root, 1e-6)
}

func TestSimplePeriodReturn(t *testing.T) {
	r, ok := SimplePeriodReturn(1100, 1000)
	require.True(t, ok)
	require.InDelta(t, 0.1, r, 1e-9)

	_, ok = SimplePeriodReturn(1100, 0)
	require.False(t, ok)
}
