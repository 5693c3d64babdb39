package repository

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaRepository reads daily bars from the Alpaca market data api. It only
// covers US listings.
type AlpacaRepository interface {
	PriceBarSource
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h alpacaRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]PriceBar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.Raw,
		Start:      util.TruncateToDate(start),
		End:        util.TruncateToDate(end).AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, domain.UpstreamFetchError{
			Source:      "alpaca",
			Key:         symbol,
			RateLimited: isRateLimited(err),
			Err:         fmt.Errorf("failed to get bars: %w", err),
		}
	}

	out := []PriceBar{}
	for _, bar := range bars {
		if bar.Close == 0 {
			continue
		}
		date := util.TruncateToDate(bar.Timestamp.UTC())
		if date.After(util.TruncateToDate(end)) {
			continue
		}
		out = append(out, PriceBar{
			Date:  date,
			Close: decimal.NewFromFloat(bar.Close),
		})
	}

	return out, nil
}
