package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultLookbackDays = 14
)

// Series maps a calendar date (time.DateOnly) to an observed value.
type Series map[string]decimal.Decimal

// Snapshot holds pre-loaded observations keyed by entity. Entities are
// security ids for prices, currency codes for FX rates and benchmark keys for
// benchmark prices.
type Snapshot map[string]Series

func NewSnapshot() Snapshot {
	return Snapshot{}
}

func (s Snapshot) Put(key string, date time.Time, value decimal.Decimal) {
	if _, ok := s[key]; !ok {
		s[key] = Series{}
	}
	s[key][date.Format(time.DateOnly)] = value
}

func (s Snapshot) Get(key string, date time.Time) (decimal.Decimal, bool) {
	series, ok := s[key]
	if !ok {
		return decimal.Zero, false
	}
	v, ok := series[date.Format(time.DateOnly)]
	return v, ok
}

// Resolve returns the value observed on target, or failing that the most
// recent value within maxLookbackDays calendar days before it. Weekends and
// holidays count as positions in the walk-back.
func (s Snapshot) Resolve(key string, target time.Time, maxLookbackDays int) (decimal.Decimal, bool) {
	v, _, ok := s.ResolveWithDate(key, target, maxLookbackDays)
	return v, ok
}

// ResolveWithDate is Resolve that also reports the date the value was
// observed on.
func (s Snapshot) ResolveWithDate(key string, target time.Time, maxLookbackDays int) (decimal.Decimal, time.Time, bool) {
	series, ok := s[key]
	if !ok {
		return decimal.Zero, time.Time{}, false
	}
	date := target
	for i := 0; i <= maxLookbackDays; i++ {
		if v, ok := series[date.Format(time.DateOnly)]; ok {
			return v, date, true
		}
		date = date.AddDate(0, 0, -1)
	}
	return decimal.Zero, time.Time{}, false
}

// LatestObservedDate walks back from target up to maxLookbackDays and returns
// the first date on which any key has an observation.
func (s Snapshot) LatestObservedDate(target time.Time, maxLookbackDays int) (time.Time, bool) {
	date := target
	for i := 0; i <= maxLookbackDays; i++ {
		key := date.Format(time.DateOnly)
		for _, series := range s {
			if _, ok := series[key]; ok {
				return date, true
			}
		}
		date = date.AddDate(0, 0, -1)
	}
	return target, false
}

// Dates returns the observed dates for key in ascending order.
func (s Snapshot) Dates(key string) []time.Time {
	out := []time.Time{}
	for d := range s[key] {
		t, err := time.Parse(time.DateOnly, d)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}
