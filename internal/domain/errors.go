package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingData      = errors.New("data unavailable")
	ErrDidNotConverge   = errors.New("solver did not converge")
	ErrUnknownBenchmark = errors.New("unknown benchmark")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// MissingDataError marks a price or rate that could not be resolved even after
// forward-fill.
type MissingDataError struct {
	Kind string
	Key  string
	Date time.Time
}

func (e MissingDataError) Error() string {
	return fmt.Sprintf("no %s for %s within lookback of %s", e.Kind, e.Key, e.Date.Format(time.DateOnly))
}

func (e MissingDataError) Unwrap() error {
	return ErrMissingData
}

// UnsupportedCurrencyError is returned when the FX source cannot provide rates
// for a currency at all.
type UnsupportedCurrencyError struct {
	Currency string
}

func (e UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("currency %s is not supported by the exchange rate source", e.Currency)
}

// UpstreamFetchError wraps a network or rate limit failure from an external
// data source.
type UpstreamFetchError struct {
	Source      string
	Key         string
	RateLimited bool
	Err         error
}

func (e UpstreamFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s from %s: %s", e.Key, e.Source, e.Err.Error())
}

func (e UpstreamFetchError) Unwrap() error {
	return e.Err
}

func IsUnsupportedCurrency(err error) bool {
	var target UnsupportedCurrencyError
	return errors.As(err, &target)
}
