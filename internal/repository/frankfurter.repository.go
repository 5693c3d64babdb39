package repository

import (
	"context"
	"errors"
	"fmt"
	"portfoliotracker/internal/domain"
	"portfoliotracker/pkg/frankfurter"
	"strings"
	"time"
)

// FrankfurterRepository reads ECB reference rates into EUR.
type FrankfurterRepository interface {
	GetRates(ctx context.Context, currency string, start, end time.Time) ([]domain.RateObservation, error)
}

type frankfurterRepositoryHandler struct {
	Client *frankfurter.Client
}

func NewFrankfurterRepository(client *frankfurter.Client) FrankfurterRepository {
	return frankfurterRepositoryHandler{
		Client: client,
	}
}

func (h frankfurterRepositoryHandler) GetRates(ctx context.Context, currency string, start, end time.Time) ([]domain.RateObservation, error) {
	currency = strings.ToUpper(currency)
	rates, err := h.Client.GetRates(ctx, currency, domain.ReportingCurrency, start, end)
	if errors.Is(err, frankfurter.ErrUnsupportedCurrency) {
		return nil, domain.UnsupportedCurrencyError{Currency: currency}
	} else if err != nil {
		return nil, domain.UpstreamFetchError{
			Source:      "frankfurter",
			Key:         currency,
			RateLimited: isRateLimited(err),
			Err:         fmt.Errorf("failed to get rates: %w", err),
		}
	}

	out := []domain.RateObservation{}
	for _, r := range rates {
		out = append(out, domain.RateObservation{
			FromCurrency: currency,
			ToCurrency:   domain.ReportingCurrency,
			Date:         r.Date,
			Rate:         r.Rate,
		})
	}

	return out, nil
}
