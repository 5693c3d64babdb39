package calculator

import (
	"fmt"
	"math"
	"portfoliotracker/internal/domain"
	"sort"
)

const daysPerYear = 365.0

type objectiveFunc func(float64) float64

// XIRR solves for the annual rate r such that the cash flows discounted at
// (1+r)^(days/365) sum to zero. The rate is returned as a fraction.
func XIRR(flows []domain.CashFlow) (float64, error) {
	if len(flows) < 2 {
		return 0, fmt.Errorf("need at least 2 cash flows, got %d: %w", len(flows), domain.ErrDidNotConverge)
	}
	sorted := make([]domain.CashFlow, len(flows))
	copy(sorted, flows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	hasPositive, hasNegative := false, false
	years := make([]float64, len(sorted))
	for i, cf := range sorted {
		years[i] = sorted[i].Date.Sub(sorted[0].Date).Hours() / 24 / daysPerYear
		if cf.Amount > 0 {
			hasPositive = true
		} else if cf.Amount < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0, fmt.Errorf("cash flows must change sign: %w", domain.ErrDidNotConverge)
	}

	npv := func(rate float64) float64 {
		total := 0.0
		for i, cf := range sorted {
			total += cf.Amount / math.Pow(1+rate, years[i])
		}
		return total
	}
	dnpv := func(rate float64) float64 {
		total := 0.0
		for i, cf := range sorted {
			total -= years[i] * cf.Amount / math.Pow(1+rate, years[i]+1)
		}
		return total
	}

	if rate, ok := newton(npv, dnpv, 0.1); ok {
		return rate, nil
	}

	lo, hi, ok := bracket(npv)
	if !ok {
		return 0, domain.ErrDidNotConverge
	}
	return bisect(npv, lo, hi)
}

func newton(f, df objectiveFunc, guess float64) (float64, bool) {
	const (
		maxIterations = 100
		tol           = 1e-9
	)
	rate := guess
	for i := 0; i < maxIterations; i++ {
		d := df(rate)
		if d == 0 || math.IsNaN(d) {
			return 0, false
		}
		next := rate - f(rate)/d
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			return 0, false
		}
		if math.Abs(next-rate) < tol {
			return next, true
		}
		rate = next
	}
	return 0, false
}

// bracket looks for an interval above -100% on which f changes sign.
func bracket(f objectiveFunc) (float64, float64, bool) {
	lo := -0.9999
	flo := f(lo)
	for hi := 1.0; hi < 1e6; hi *= 2 {
		fhi := f(hi)
		if flo*fhi < 0 {
			return lo, hi, true
		}
	}
	return 0, 0, false
}

// bisect narrows a sign changing interval [lo, hi] down to a root of f.
func bisect(f objectiveFunc, lo, hi float64) (float64, error) {
	const (
		maxIterations = 200
		tol           = 1e-9
	)

	flo := f(lo)
	for i := 0; i < maxIterations; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if fmid == 0 || hi-lo <= tol {
			return mid, nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}

	return 0, domain.ErrDidNotConverge
}

// SimplePeriodReturn is used instead of XIRR when the boundaries are too
// close together for an annualised rate to be meaningful.
func SimplePeriodReturn(endValue, totalInvested float64) (float64, bool) {
	if totalInvested <= 0 {
		return 0, false
	}
	return endValue/totalInvested - 1, true
}
